package controllers

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SpecificationController struct {
	Log                  *zap.Logger
	SpecificationUsecase contracts.SpecificationUsecase
}

func NewSpecificationController(logger *zap.Logger, specificationUsecase contracts.SpecificationUsecase) *SpecificationController {
	return &SpecificationController{
		Log:                  logger,
		SpecificationUsecase: specificationUsecase,
	}
}

func (ctrl *SpecificationController) FetchActiveSpecification(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SpecificationUsecase.FetchActiveSpecification(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindActiveSpecificationSuccessMessage, result)
}

func (ctrl *SpecificationController) FetchSpecificationHistory(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SpecificationUsecase.FetchSpecificationHistory(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSpecificationHistorySuccessMessage, result)
}

func (ctrl *SpecificationController) FetchSpecificationByID(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SpecificationUsecase.FetchSpecificationByID(ctx, sess,
		chi.URLParam(r, constvars.URLParamPatientID),
		chi.URLParam(r, constvars.URLParamSpecificationID),
	)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSpecificationSuccessMessage, result)
}

func (ctrl *SpecificationController) AddCosts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddCosts)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
	request.SpecificationID = chi.URLParam(r, constvars.URLParamSpecificationID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.SpecificationUsecase.AddCosts(ctx, sess, request)
	if err != nil {
		ctrl.Log.Error("Failed to add costs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSpecificationIDKey, request.SpecificationID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "specification_costs_added", requestID,
		zap.String(constvars.LoggingSpecificationIDKey, request.SpecificationID),
		zap.Float64("lodging_price", request.LodgingPrice),
		zap.Float64("extra_cost_amount", request.ExtraCostAmount),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddCostsSuccessMessage, nil)
}

func (ctrl *SpecificationController) FetchPeriods(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SpecificationUsecase.FetchFuturePeriods(ctx, sess, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPeriodsSuccessMessage, result)
}

// ExportPeriods streams the generated file back to the caller.
func (ctrl *SpecificationController) ExportPeriods(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ExportSpecifications{
		PatientID: chi.URLParam(r, constvars.URLParamPatientID),
		Format:    r.URL.Query().Get(constvars.QueryParamFormat),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnsupportedExportFormat(request.Format))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	file, err := ctrl.SpecificationUsecase.ExportPeriods(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, file)
}

// StoreExport uploads the generated file and answers with a presigned link.
func (ctrl *SpecificationController) StoreExport(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ExportSpecifications)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SpecificationUsecase.StoreExport(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StoreExportSuccessMessage, result)
}
