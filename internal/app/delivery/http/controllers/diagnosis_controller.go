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

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
}

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase) *DiagnosisController {
	return &DiagnosisController{
		Log:              logger,
		DiagnosisUsecase: diagnosisUsecase,
	}
}

func (ctrl *DiagnosisController) ListDiagnoses(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.ListDiagnoses(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindDiagnosesSuccessMessage, result)
}

func (ctrl *DiagnosisController) CreateDiagnosis(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateDiagnosis)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.CreateDiagnosis(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) UpdateDiagnosis(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDiagnosis)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
	request.DiagnosisID = chi.URLParam(r, constvars.URLParamResourceID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.UpdateDiagnosis(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) DeleteDiagnosis(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.DiagnosisUsecase.DeleteDiagnosis(ctx, sess,
		chi.URLParam(r, constvars.URLParamPatientID),
		chi.URLParam(r, constvars.URLParamResourceID),
	)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDiagnosisSuccessMessage, nil)
}
