package redis

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	err := r.client.SAdd(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisAddToSet(err)
	}
	return nil
}

func (r *redisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	setMembers, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGetSetMembers(err)
	}
	return setMembers, nil
}

func (r *redisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	err := r.client.Expire(ctx, key, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
