package controllers

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.ListPatients(ctx, sess)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPatientsSuccessMessage, result)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindPatientByID(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPatientSuccessMessage, result)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreatePatient)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.CreatePatient(ctx, sess, request)
	if err != nil {
		ctrl.Log.Error("Failed to create patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_created", requestID,
		zap.String(constvars.LoggingPatientIDKey, result.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, result)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePatient)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.UpdatePatient(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, result)
}

func (ctrl *PatientController) DischargePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.DischargePatient)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.DischargePatient(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_discharged", requestID,
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DischargePatientSuccessMessage, result)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.PatientUsecase.DeletePatient(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}
