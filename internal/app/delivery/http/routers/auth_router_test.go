package routers

import (
	"bytes"
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/delivery/http/controllers"
	"carehome-service/internal/app/delivery/http/middlewares"
	"carehome-service/internal/app/services/core/auth"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
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

func newAuthTestRouter(authenticator *MockAuthenticator) *chi.Mux {
	logger := zap.NewNop()
	middlewareInstance := middlewares.NewMiddlewares(logger, authenticator, &config.InternalConfig{})

	router := chi.NewRouter()
	router.Use(middlewareInstance.Session)
	attachAuthRoutes(router, controllers.NewAuthController(logger, auth.NewAuthUsecase(logger)))
	return router
}

func refreshCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == constvars.CookieRefreshToken {
			return cookie
		}
	}
	return nil
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("Login with valid credentials", func(t *testing.T) {
		authenticator := new(MockAuthenticator)
		authenticator.On("Login", mock.Anything, "nurse", "secret").Return(&care_dto.AuthResult{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         &care_dto.User{ID: "u1", Username: "nurse", Role: "nurse"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":" nurse ","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		newAuthTestRouter(authenticator).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status OK")
		assert.Contains(t, rr.Body.String(), `"accessToken":"access-1"`)
		cookie := refreshCookie(rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		authenticator.AssertExpectations(t)
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		authenticator := new(MockAuthenticator)
		authenticator.On("Login", mock.Anything, "nurse", "wrong").Return(nil, exceptions.ErrInvalidUsernameOrPassword(nil))

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"nurse","password":"wrong"}`))
		rr := httptest.NewRecorder()
		newAuthTestRouter(authenticator).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected status Unauthorized")
		assert.Contains(t, rr.Body.String(), constvars.ErrClientInvalidUsernameOrPassword)
		assert.Nil(t, refreshCookie(rr))
	})

	t.Run("Login without password", func(t *testing.T) {
		authenticator := new(MockAuthenticator)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"nurse"}`))
		rr := httptest.NewRecorder()
		newAuthTestRouter(authenticator).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "Expected status Bad Request")
		authenticator.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthRouter_RefreshAndLogout(t *testing.T) {
	t.Run("Refresh trades the cookie for a new token", func(t *testing.T) {
		authenticator := new(MockAuthenticator)
		authenticator.On("Refresh", mock.Anything, "refresh-1").Return(&care_dto.AuthResult{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-1"})
		rr := httptest.NewRecorder()
		newAuthTestRouter(authenticator).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status OK")
		assert.Contains(t, rr.Body.String(), `"accessToken":"access-2"`)
		assert.Equal(t, "access-2", rr.Header().Get(constvars.HeaderXAccessToken))
		cookie := refreshCookie(rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh-2", cookie.Value)
	})

	t.Run("Refresh without cookie is unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newAuthTestRouter(new(MockAuthenticator)).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected status Unauthorized")
	})

	t.Run("Logout clears the cookie even when the backend fails", func(t *testing.T) {
		authenticator := new(MockAuthenticator)
		authenticator.On("Logout", mock.Anything, "access-1", "refresh-1").Return(errors.New("unreachable"))

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer access-1")
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-1"})
		rr := httptest.NewRecorder()
		newAuthTestRouter(authenticator).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status OK")
		cookie := refreshCookie(rr)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})
}
