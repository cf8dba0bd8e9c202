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

type ReserveController struct {
	Log            *zap.Logger
	ReserveUsecase contracts.ReserveUsecase
}

func NewReserveController(logger *zap.Logger, reserveUsecase contracts.ReserveUsecase) *ReserveController {
	return &ReserveController{
		Log:            logger,
		ReserveUsecase: reserveUsecase,
	}
}

func (ctrl *ReserveController) ListReserves(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ReserveUsecase.ListReserves(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindReservesSuccessMessage, result)
}

func (ctrl *ReserveController) TransferToReserve(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.TransferToReserve)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ReserveUsecase.TransferToReserve(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TransferReserveSuccessMessage, result)
}
