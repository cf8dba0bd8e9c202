package middlewares

import (
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
					zap.Stack("stack"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
