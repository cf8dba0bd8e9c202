package cache

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	keyPrefix = "care:query:"
	tagPrefix = "care:tag:"
)

type queryCache struct {
	Redis contracts.RedisRepository
	TTL   time.Duration
	Log   *zap.Logger
}

// NewQueryCache returns a redis backed cache. Tag sets live a little longer than
// the entries they index so an eviction never misses a live key.
func NewQueryCache(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.QueryCache {
	return &queryCache{
		Redis: redisRepository,
		TTL:   ttl,
		Log:   logger,
	}
}

// Key builds a query cache key from a resource and its query parts.
func Key(resource string, parts ...string) string {
	return keyPrefix + resource + ":" + strings.Join(parts, ":")
}

// PatientTag is the tag every patient scoped list is registered under.
func PatientTag(resource, patientID string) contracts.CacheTag {
	return contracts.CacheTag{Resource: resource, Scope: "patient:" + patientID}
}

// GlobalTag covers resources that are not scoped to a patient.
func GlobalTag(resource string) contracts.CacheTag {
	return contracts.CacheTag{Resource: resource, Scope: "all"}
}

func tagKey(tag contracts.CacheTag) string {
	return tagPrefix + tag.String()
}

func (c *queryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.Redis.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}

	err = json.Unmarshal([]byte(raw), dest)
	if err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

func (c *queryCache) Set(ctx context.Context, key string, value interface{}, tags ...contracts.CacheTag) error {
	err := c.Redis.Set(ctx, key, value, c.TTL)
	if err != nil {
		return err
	}

	for _, tag := range tags {
		setKey := tagKey(tag)
		err = c.Redis.AddToSet(ctx, setKey, key)
		if err != nil {
			return err
		}
		err = c.Redis.Expire(ctx, setKey, c.TTL+time.Minute)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *queryCache) Evict(ctx context.Context, tags ...contracts.CacheTag) (int, error) {
	requestID := utils.GetRequestID(ctx)
	evicted := 0

	for _, tag := range tags {
		setKey := tagKey(tag)
		members, err := c.Redis.GetSetMembers(ctx, setKey)
		if err != nil {
			return evicted, err
		}

		keys := append(members, setKey)
		err = c.Redis.Delete(ctx, keys...)
		if err != nil {
			return evicted, err
		}

		evicted += len(members)
		metrics.AddCacheEvictions(tag.Resource, len(members))
		c.Log.Debug("queryCache.Evict tag evicted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheTagKey, tag.String()),
			zap.Int(constvars.LoggingCountKey, len(members)),
		)
	}
	return evicted, nil
}
