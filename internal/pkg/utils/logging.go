package utils

import (
	"context"
	"time"

	"carehome-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
