package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	GetSetMembers(ctx context.Context, key string) ([]string, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
}
