package cache

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	sets    map[string]map[string]struct{}
	failGet error
	failSet error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, sets: map[string]map[string]struct{}{}}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if m.failSet != nil {
		return m.failSet
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(data)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	if m.failGet != nil {
		return "", m.failGet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedis) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
		delete(m.sets, key)
	}
	return nil
}

func (m *memoryRedis) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sets[key] == nil {
		m.sets[key] = map[string]struct{}{}
	}
	for _, value := range values {
		m.sets[key][value.(string)] = struct{}{}
	}
	return nil
}

func (m *memoryRedis) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	members := make([]string, 0, len(m.sets[key]))
	for member := range m.sets[key] {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, exp time.Duration) error {
	return nil
}

type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestKeysAndTags(t *testing.T) {
	assert.Equal(t, "care:query:medicines:patient-1", Key("medicines", "patient-1"))
	assert.Equal(t, "care:query:specifications:id:spec-1", Key("specifications", "id", "spec-1"))
	assert.Equal(t, "diagnoses:patient:p1", PatientTag("diagnoses", "p1").String())
	assert.Equal(t, "notifications:all", GlobalTag("notifications").String())
}

func TestQueryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Get on a missing key is a miss", func(t *testing.T) {
		queryCache := NewQueryCache(newMemoryRedis(), time.Minute, zap.NewNop())

		var dest entry
		hit, err := queryCache.Get(ctx, Key("patients", "all"), &dest)

		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Set then Get returns the stored value", func(t *testing.T) {
		queryCache := NewQueryCache(newMemoryRedis(), time.Minute, zap.NewNop())

		err := queryCache.Set(ctx, Key("patients", "p1"), entry{ID: "p1", Name: "Ana"}, GlobalTag("patients"))
		require.NoError(t, err)

		var dest entry
		hit, err := queryCache.Get(ctx, Key("patients", "p1"), &dest)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, entry{ID: "p1", Name: "Ana"}, dest)
	})

	t.Run("Evict drops every key under the tag and nothing else", func(t *testing.T) {
		redis := newMemoryRedis()
		queryCache := NewQueryCache(redis, time.Minute, zap.NewNop())

		require.NoError(t, queryCache.Set(ctx, Key("medicines", "p1"), []entry{{ID: "m1"}}, PatientTag("medicines", "p1")))
		require.NoError(t, queryCache.Set(ctx, Key("medicines", "p1", "page2"), []entry{{ID: "m2"}}, PatientTag("medicines", "p1")))
		require.NoError(t, queryCache.Set(ctx, Key("medicines", "p2"), []entry{{ID: "m3"}}, PatientTag("medicines", "p2")))

		evicted, err := queryCache.Evict(ctx, PatientTag("medicines", "p1"))
		require.NoError(t, err)
		assert.Equal(t, 2, evicted)

		var dest []entry
		hit, _ := queryCache.Get(ctx, Key("medicines", "p1"), &dest)
		assert.False(t, hit)
		hit, _ = queryCache.Get(ctx, Key("medicines", "p2"), &dest)
		assert.True(t, hit, "other patient must stay cached")
		assert.NotContains(t, redis.sets, "care:tag:medicines:patient:p1")
	})

	t.Run("Corrupt payload reports a parse error", func(t *testing.T) {
		redis := newMemoryRedis()
		redis.values[Key("patients", "all")] = "{not json"
		queryCache := NewQueryCache(redis, time.Minute, zap.NewNop())

		var dest []entry
		hit, err := queryCache.Get(ctx, Key("patients", "all"), &dest)

		assert.False(t, hit)
		assert.Error(t, err)
	})
}

func tokenSession(token string) *session.Session {
	return session.Restore(nil, zap.NewNop(), session.Credentials{AccessToken: token})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	sess := tokenSession("token-a")

	t.Run("Second fetch is served from the cache", func(t *testing.T) {
		queryCache := NewQueryCache(newMemoryRedis(), time.Minute, zap.NewNop())
		loads := 0
		load := func(ctx context.Context) ([]entry, error) {
			loads++
			return []entry{{ID: "d1", Name: "Flu"}}, nil
		}

		first, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("diagnoses", "p1"), []contracts.CacheTag{PatientTag("diagnoses", "p1")}, load)
		require.NoError(t, err)
		second, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("diagnoses", "p1"), []contracts.CacheTag{PatientTag("diagnoses", "p1")}, load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, loads)
	})

	t.Run("Nil cache always loads", func(t *testing.T) {
		loads := 0
		load := func(ctx context.Context) (int, error) {
			loads++
			return 42, nil
		}

		for i := 0; i < 3; i++ {
			value, err := Fetch(ctx, nil, nil, zap.NewNop(), Key("x"), nil, load)
			require.NoError(t, err)
			assert.Equal(t, 42, value)
		}
		assert.Equal(t, 3, loads)
	})

	t.Run("Redis failures fall back to the backend", func(t *testing.T) {
		redis := newMemoryRedis()
		redis.failGet = errors.New("redis down")
		redis.failSet = errors.New("redis down")
		queryCache := NewQueryCache(redis, time.Minute, zap.NewNop())

		value, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("patients", "all"), nil, func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh", value)
	})

	t.Run("Load errors are not cached", func(t *testing.T) {
		redis := newMemoryRedis()
		queryCache := NewQueryCache(redis, time.Minute, zap.NewNop())

		_, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("patients", "all"), nil, func(ctx context.Context) ([]entry, error) {
			return nil, errors.New("backend down")
		})

		assert.EqualError(t, err, "backend down")
		assert.Empty(t, redis.values)
	})

	t.Run("Anonymous session is rejected before the cache is read", func(t *testing.T) {
		queryCache := NewQueryCache(newMemoryRedis(), time.Minute, zap.NewNop())
		load := func(ctx context.Context) (string, error) {
			return "secret", nil
		}
		_, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("specifications", "active", "p1"), nil, load)
		require.NoError(t, err)

		loads := 0
		for _, caller := range []*session.Session{nil, session.New(nil, zap.NewNop())} {
			value, err := Fetch(ctx, queryCache, caller, zap.NewNop(), Key("specifications", "active", "p1"), nil, func(ctx context.Context) (string, error) {
				loads++
				return "secret", nil
			})

			assert.Empty(t, value)
			assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
		}
		assert.Equal(t, 0, loads)
	})

	t.Run("Another token does not see cached entries", func(t *testing.T) {
		queryCache := NewQueryCache(newMemoryRedis(), time.Minute, zap.NewNop())
		_, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("patients", "all"), nil, func(ctx context.Context) (string, error) {
			return "cached", nil
		})
		require.NoError(t, err)

		backendCalls := 0
		value, err := Fetch(ctx, queryCache, tokenSession("made-up"), zap.NewNop(), Key("patients", "all"), nil, func(ctx context.Context) (string, error) {
			backendCalls++
			return "", exceptions.ErrTokenInvalidOrExpired(nil)
		})

		assert.Empty(t, value)
		assert.Equal(t, 1, backendCalls)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})

	t.Run("Eviction drops the entries of every token", func(t *testing.T) {
		redis := newMemoryRedis()
		queryCache := NewQueryCache(redis, time.Minute, zap.NewNop())
		tags := []contracts.CacheTag{PatientTag("reserves", "p1")}
		load := func(ctx context.Context) (string, error) {
			return "entries", nil
		}

		_, err := Fetch(ctx, queryCache, sess, zap.NewNop(), Key("reserves", "p1"), tags, load)
		require.NoError(t, err)
		_, err = Fetch(ctx, queryCache, tokenSession("token-b"), zap.NewNop(), Key("reserves", "p1"), tags, load)
		require.NoError(t, err)

		evicted, err := queryCache.Evict(ctx, tags...)

		require.NoError(t, err)
		assert.Equal(t, 2, evicted)
		assert.Empty(t, redis.values)
	})
}
