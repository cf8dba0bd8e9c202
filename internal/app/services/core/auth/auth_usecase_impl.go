package auth

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log *zap.Logger
}

func NewAuthUsecase(logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		Log: logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, sess *session.Session, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	username := strings.TrimSpace(request.Username)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", username),
	)

	err := sess.Authenticate(ctx, username, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	credentials := sess.Credentials()
	response := &responses.Login{
		AccessToken: credentials.AccessToken,
	}
	if user := credentials.User; user != nil {
		response.User = responses.SessionUser{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			LastName: user.LastName,
			Role:     user.Role,
		}
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_in", requestID, zap.String("user_id", response.User.ID))
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sess *session.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionStateKey, string(sess.State())),
	)
	return sess.SignOut(ctx)
}
