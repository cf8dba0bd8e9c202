package controllers

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.NotificationUsecase.ListNotifications(ctx, sess)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindNotificationsSuccessMessage, result)
}

func (ctrl *NotificationController) CreateNotification(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateNotification)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.NotificationUsecase.CreateNotification(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNotificationSuccessMessage, result)
}

func (ctrl *NotificationController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.NotificationUsecase.MarkNotificationRead(ctx, sess, chi.URLParam(r, constvars.URLParamResourceID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReadNotificationSuccessMessage, result)
}

func (ctrl *NotificationController) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.NotificationUsecase.DeleteNotification(ctx, sess, chi.URLParam(r, constvars.URLParamResourceID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNotificationSuccessMessage, nil)
}
