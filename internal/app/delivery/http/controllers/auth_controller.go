package controllers

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/delivery/http/middlewares"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Login)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, sess, request)
	if err != nil {
		ctrl.Log.Error("Failed to login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	middlewares.SetRefreshCookie(w, sess.Credentials().RefreshToken)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

// Refresh trades the refresh token cookie for a new access token.
func (ctrl *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = sess.Refresh(ctx, "")
	if err != nil {
		middlewares.ClearRefreshCookie(w)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshSuccessMessage, responses.Login{
		AccessToken: sess.Credentials().AccessToken,
	})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.AuthUsecase.Logout(ctx, sess)
	middlewares.ClearRefreshCookie(w)
	if err != nil {
		ctrl.Log.Warn("Backend logout failed, local session cleared",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
