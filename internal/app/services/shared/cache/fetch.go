package cache

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetch serves key from the cache or calls load and stores its raw result under tags.
// A nil cache always loads. With a cache, the session must yield a token and entries
// are scoped to it. Cache failures are logged and never fail the read.
func Fetch[T any](ctx context.Context, queryCache contracts.QueryCache, sess *session.Session, log *zap.Logger, key string, tags []contracts.CacheTag, load func(ctx context.Context) (T, error)) (T, error) {
	if queryCache == nil {
		return load(ctx)
	}

	var zero T
	if sess == nil {
		return zero, exceptions.ErrTokenMissing(nil)
	}
	token, err := sess.Token(ctx)
	if err != nil {
		return zero, err
	}
	key = ScopedKey(key, token)

	resource := ""
	if len(tags) > 0 {
		resource = tags[0].Resource
	}
	requestID := utils.GetRequestID(ctx)

	var cached T
	hit, err := queryCache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("cache.Fetch lookup failed, loading from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
	metrics.IncCacheLookup(resource, hit)
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	err = queryCache.Set(ctx, key, value, tags...)
	if err != nil {
		log.Warn("cache.Fetch store failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
	return value, nil
}

// ScopedKey appends a name-based UUID of the access token to key.
func ScopedKey(key, token string) string {
	return key + ":" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(token)).String()
}
