package controllers

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

func sessionFromContext(ctx context.Context) (*session.Session, error) {
	sess, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*session.Session)
	if !ok || sess == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return sess, nil
}

// decodeRequest parses the JSON body into request and validates it.
func decodeRequest(log *zap.Logger, r *http.Request, request interface{}) error {
	requestID := utils.GetRequestID(r.Context())

	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		return exceptions.ErrCannotParseJSON(err)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		log.Error("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "validation"),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func buildUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
