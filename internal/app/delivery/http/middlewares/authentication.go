package middlewares

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireAuth rejects requests that carry neither an access token nor a refresh
// token. It must run after Session.
func (m *Middlewares) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*session.Session)
		if sess == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		switch sess.State() {
		case session.StateAuthenticated, session.StateExpired:
			next.ServeHTTP(w, r)
		default:
			m.Log.Info("Middlewares.RequireAuth rejected request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingSessionStateKey, string(sess.State())),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
		}
	})
}
