package invalidation

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type invalidator struct {
	Cache     contracts.QueryCache
	Publisher contracts.MutationPublisher
	Log       *zap.Logger
	now       func() time.Time
}

// NewInvalidator accepts a nil cache for deployments that run without redis.
func NewInvalidator(queryCache contracts.QueryCache, publisher contracts.MutationPublisher, logger *zap.Logger) contracts.Invalidator {
	return &invalidator{
		Cache:     queryCache,
		Publisher: publisher,
		Log:       logger,
		now:       time.Now,
	}
}

// AfterMutation never fails the mutation it follows. The backend change has
// already happened, entries that could not be evicted age out with the cache TTL.
func (i *invalidator) AfterMutation(ctx context.Context, event contracts.MutationEvent, tags ...contracts.CacheTag) {
	requestID := utils.GetRequestID(ctx)

	if i.Cache != nil && len(tags) > 0 {
		evicted, err := i.Cache.Evict(ctx, tags...)
		if err != nil {
			i.Log.Error("invalidator.AfterMutation cache eviction failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, event.Resource),
				zap.Error(err),
			)
		} else {
			i.Log.Info("invalidator.AfterMutation cache evicted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, event.Resource),
				zap.Int(constvars.LoggingCountKey, evicted),
			)
		}
	}

	if i.Publisher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.RequestID == "" {
		event.RequestID = requestID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = i.now().UTC()
	}

	err := i.Publisher.Publish(ctx, event)
	if err != nil {
		metrics.IncMutationEvent(event.Resource, metrics.ResultError)
		i.Log.Error("invalidator.AfterMutation publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, event.Resource),
			zap.Error(err),
		)
		return
	}
	metrics.IncMutationEvent(event.Resource, metrics.ResultSuccess)
}
