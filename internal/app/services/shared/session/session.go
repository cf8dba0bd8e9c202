package session

import (
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type State string

const (
	StateUninitialized  State = "uninitialized"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateExpired        State = "expired"
	StateSignedOut      State = "signed-out"
)

// Authenticator talks to the care backend auth endpoints.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*care_dto.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*care_dto.AuthResult, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// Credentials is the persistable part of a session.
type Credentials struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         *care_dto.User `json:"user,omitempty"`
}

type Option func(*Session)

func WithExpirySkew(skew time.Duration) Option {
	return func(s *Session) {
		s.skew = skew
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session owns the bearer token of one operator. It is safe for concurrent use.
type Session struct {
	mu           sync.Mutex
	state        State
	accessToken  string
	refreshToken string
	user         *care_dto.User
	expiresAt    time.Time
	refreshed    bool

	auth Authenticator
	log  *zap.Logger
	skew time.Duration
	now  func() time.Time
}

func New(auth Authenticator, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{
		state: StateUninitialized,
		auth:  auth,
		log:   logger,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore rebuilds a session from previously issued credentials. A session without
// an access token but with a refresh token starts expired so the first call refreshes.
func Restore(auth Authenticator, logger *zap.Logger, credentials Credentials, opts ...Option) *Session {
	s := New(auth, logger, opts...)
	s.user = credentials.User
	s.refreshToken = credentials.RefreshToken

	switch {
	case credentials.AccessToken != "":
		s.setToken(credentials.AccessToken)
		s.state = StateAuthenticated
		if s.isExpiredLocked() {
			s.state = StateExpired
		}
	case credentials.RefreshToken != "":
		s.state = StateExpired
	}
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) User() *care_dto.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Refreshed reports whether the access token was replaced after the session was built.
func (s *Session) Refreshed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshed
}

func (s *Session) Credentials() Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Credentials{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		User:         s.user,
	}
}

func (s *Session) Authenticate(ctx context.Context, username, password string) error {
	s.mu.Lock()
	if s.state == StateAuthenticating {
		state := s.state
		s.mu.Unlock()
		return exceptions.ErrSessionState(string(state), "authenticate")
	}
	s.state = StateAuthenticating
	s.mu.Unlock()

	result, err := s.auth.Login(ctx, username, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateUninitialized
		s.log.Error("session.Authenticate error",
			zap.String(constvars.LoggingSessionStateKey, string(s.state)),
			zap.Error(err),
		)
		return err
	}

	s.apply(result)
	s.state = StateAuthenticated
	s.refreshed = false
	s.log.Info("session.Authenticate succeeded",
		zap.String(constvars.LoggingSessionStateKey, string(s.state)),
	)
	return nil
}

// Token returns the bearer token for an outgoing call, refreshing first when the
// local copy is already past its expiry.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticated && s.isExpiredLocked() {
		s.state = StateExpired
	}

	switch s.state {
	case StateAuthenticated:
		return s.accessToken, nil
	case StateExpired:
		if err := s.refreshLocked(ctx); err != nil {
			return "", err
		}
		return s.accessToken, nil
	case StateSignedOut:
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	default:
		return "", exceptions.ErrTokenMissing(nil)
	}
}

// Refresh replaces the access token unless another caller already replaced staleToken.
func (s *Session) Refresh(ctx context.Context, staleToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticated && staleToken != "" && s.accessToken != staleToken {
		return nil
	}
	return s.refreshLocked(ctx)
}

func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.accessToken != "" || s.refreshToken != "" {
		err = s.auth.Logout(ctx, s.accessToken, s.refreshToken)
		if err != nil {
			s.log.Warn("session.SignOut backend logout failed", zap.Error(err))
		}
	}
	s.clearLocked()
	return err
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.state == StateUninitialized || s.state == StateAuthenticating {
		return exceptions.ErrSessionState(string(s.state), "refresh")
	}
	if s.refreshToken == "" {
		s.clearLocked()
		return exceptions.ErrRefreshFailed(nil)
	}

	result, err := s.auth.Refresh(ctx, s.refreshToken)
	if err != nil {
		metrics.IncSessionRefresh(metrics.ResultError)
		s.log.Warn("session.Refresh error, signing out", zap.Error(err))
		s.clearLocked()

		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return err
		}
		return exceptions.ErrRefreshFailed(err)
	}

	s.apply(result)
	s.state = StateAuthenticated
	s.refreshed = true
	metrics.IncSessionRefresh(metrics.ResultSuccess)
	s.log.Info("session.Refresh succeeded")
	return nil
}

func (s *Session) apply(result *care_dto.AuthResult) {
	s.setToken(result.AccessToken)
	if result.RefreshToken != "" {
		s.refreshToken = result.RefreshToken
	}
	if result.User != nil {
		s.user = result.User
	}
}

func (s *Session) clearLocked() {
	s.state = StateSignedOut
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.expiresAt = time.Time{}
}

func (s *Session) setToken(token string) {
	s.accessToken = token
	s.expiresAt = tokenExpiry(token)
}

func (s *Session) isExpiredLocked() bool {
	if s.expiresAt.IsZero() {
		return false
	}
	return !s.now().Add(s.skew).Before(s.expiresAt)
}

// tokenExpiry reads the exp claim without verifying the signature. Opaque tokens have no local expiry.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
