package middlewares

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// sessionWriter hands a refreshed token back to the dashboard. Headers are
// written lazily because the refresh happens somewhere inside the handler.
type sessionWriter struct {
	http.ResponseWriter
	sess         *session.Session
	refreshToken string
	wroteHeader  bool
}

func (sw *sessionWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.wroteHeader = true
		if sw.sess.Refreshed() {
			credentials := sw.sess.Credentials()
			sw.Header().Set(constvars.HeaderXAccessToken, credentials.AccessToken)
			if credentials.RefreshToken != "" && credentials.RefreshToken != sw.refreshToken {
				SetRefreshCookie(sw.ResponseWriter, credentials.RefreshToken)
			}
		}
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// Session builds a session for the request from the Authorization header and
// the refresh token cookie and stores it in the request context.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credentials := session.Credentials{
			AccessToken: strings.TrimSpace(strings.TrimPrefix(r.Header.Get(constvars.HeaderAuthorization), constvars.BearerPrefix)),
		}
		if cookie, err := r.Cookie(constvars.CookieRefreshToken); err == nil {
			credentials.RefreshToken = cookie.Value
		}

		sess := session.Restore(m.Authenticator, m.Log, credentials,
			session.WithExpirySkew(time.Duration(m.InternalConfig.Session.ExpirySkewInSeconds)*time.Second),
		)

		m.Log.Debug("Middlewares.Session restored",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingSessionStateKey, string(sess.State())),
		)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, sess)
		sw := &sessionWriter{ResponseWriter: w, sess: sess, refreshToken: credentials.RefreshToken}
		next.ServeHTTP(sw, r.WithContext(ctx))
	})
}

func SetRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieRefreshToken,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieRefreshToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
