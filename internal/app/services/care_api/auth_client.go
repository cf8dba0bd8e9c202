package care_api

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type authClient struct {
	Transport *Transport
	Log       *zap.Logger
}

// NewAuthClient returns the care backend authenticator a Session is built on.
func NewAuthClient(transport *Transport, logger *zap.Logger) session.Authenticator {
	return &authClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *authClient) Login(ctx context.Context, username, password string) (*care_dto.AuthResult, error) {
	c.Log.Info("authClient.Login called", zap.String("username", username))

	response := new(care_dto.TokenResponse)
	result, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPost,
		Path:     constvars.CarePathLogin,
		Body:     &care_dto.LoginRequest{Username: username, Password: password},
		Resource: constvars.ResourceAuth,
	}, response)
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusUnauthorized {
			return nil, exceptions.ErrInvalidUsernameOrPassword(err)
		}
		c.Log.Error("authClient.Login error", zap.Error(err))
		return nil, err
	}
	if response.AccessToken == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	c.Log.Info("authClient.Login succeeded", zap.String("username", username))
	return toAuthResult(response, result), nil
}

func (c *authClient) Refresh(ctx context.Context, refreshToken string) (*care_dto.AuthResult, error) {
	c.Log.Info("authClient.Refresh called")

	response := new(care_dto.TokenResponse)
	result, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPost,
		Path:     constvars.CarePathRefresh,
		Resource: constvars.ResourceAuth,
		Cookies:  []*http.Cookie{{Name: constvars.CookieRefreshToken, Value: refreshToken}},
	}, response)
	if err != nil {
		c.Log.Error("authClient.Refresh error", zap.Error(err))
		return nil, err
	}
	if response.AccessToken == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	authResult := toAuthResult(response, result)
	if authResult.RefreshToken == "" {
		authResult.RefreshToken = refreshToken
	}
	c.Log.Info("authClient.Refresh succeeded")
	return authResult, nil
}

func (c *authClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	c.Log.Info("authClient.Logout called")

	call := Call{
		Method:   constvars.MethodPost,
		Path:     constvars.CarePathLogout,
		Resource: constvars.ResourceAuth,
	}
	if refreshToken != "" {
		call.Cookies = []*http.Cookie{{Name: constvars.CookieRefreshToken, Value: refreshToken}}
	}
	// Logout sends the raw token so a session that is signing out never refreshes.
	call.Token = accessToken
	_, err := c.Transport.Do(ctx, call, nil)
	return err
}

func toAuthResult(response *care_dto.TokenResponse, result *Result) *care_dto.AuthResult {
	authResult := &care_dto.AuthResult{
		AccessToken: response.AccessToken,
	}
	if response.User.ID != "" || response.User.Username != "" {
		user := response.User
		authResult.User = &user
	}
	if cookie := result.Cookie(constvars.CookieRefreshToken); cookie != nil {
		authResult.RefreshToken = cookie.Value
	}
	return authResult
}
