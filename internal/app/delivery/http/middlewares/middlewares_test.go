package middlewares

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (*care_dto.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.AuthResult), args.Error(1)
}

func (m *MockAuthenticator) Refresh(ctx context.Context, refreshToken string) (*care_dto.AuthResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.AuthResult), args.Error(1)
}

func (m *MockAuthenticator) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

func newTestMiddlewares(authenticator session.Authenticator) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authenticator, &config.InternalConfig{
		App:     config.App{RequestBodyLimitInMegabyte: 1},
		Session: config.AppSession{ExpirySkewInSeconds: 30},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	t.Run("Generates a request id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps the client request id", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-req-1")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "client-req-1", seen)
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientCannotProcessRequest)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 2<<20))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("Session is restored from header and cookie", func(t *testing.T) {
		m := newTestMiddlewares(new(MockAuthenticator))
		var sess *session.Session
		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*session.Session)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer access-1")
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-1"})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, sess)
		assert.Equal(t, session.StateAuthenticated, sess.State())
		assert.Equal(t, session.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}, sess.Credentials())
	})

	t.Run("Anonymous request gets an uninitialized session", func(t *testing.T) {
		m := newTestMiddlewares(new(MockAuthenticator))
		var state session.State
		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*session.Session).State()
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, session.StateUninitialized, state)
	})

	t.Run("Refreshed token is handed back to the caller", func(t *testing.T) {
		auth := new(MockAuthenticator)
		auth.On("Refresh", mock.Anything, "refresh-1").Return(&care_dto.AuthResult{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)
		m := newTestMiddlewares(auth)

		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*session.Session)
			require.NoError(t, sess.Refresh(r.Context(), "access-1"))
			w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer access-1")
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-1"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "access-2", rr.Header().Get(constvars.HeaderXAccessToken))
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "refresh-2", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Untouched session adds no headers", func(t *testing.T) {
		m := newTestMiddlewares(new(MockAuthenticator))
		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer access-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get(constvars.HeaderXAccessToken))
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestRequireAuth(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthenticator))
	handler := m.Session(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name         string
		bearer       string
		refreshToken string
		wantStatus   int
	}{
		{"No credentials", "", "", http.StatusUnauthorized},
		{"Bearer token", "access-1", "", http.StatusNoContent},
		{"Refresh cookie only", "", "refresh-1", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			if tt.bearer != "" {
				req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+tt.bearer)
			}
			if tt.refreshToken != "" {
				req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: tt.refreshToken})
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	t.Run("Missing session middleware is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/patients", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
