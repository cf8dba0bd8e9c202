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

type CombinationController struct {
	Log                *zap.Logger
	CombinationUsecase contracts.CombinationUsecase
}

func NewCombinationController(logger *zap.Logger, combinationUsecase contracts.CombinationUsecase) *CombinationController {
	return &CombinationController{
		Log:                logger,
		CombinationUsecase: combinationUsecase,
	}
}

func (ctrl *CombinationController) ListCombinations(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CombinationUsecase.ListCombinations(ctx, sess)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindCombinationsSuccessMessage, result)
}

func (ctrl *CombinationController) CreateCombination(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateCombination)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CombinationUsecase.CreateCombination(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCombinationSuccessMessage, result)
}

func (ctrl *CombinationController) CreateCombinationInGroup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateCombinationInGroup)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.GroupID = chi.URLParam(r, constvars.URLParamGroupID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CombinationUsecase.CreateCombinationInGroup(ctx, sess, request)
	if err != nil {
		ctrl.Log.Error("Failed to create combination in group",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGroupIDKey, request.GroupID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "combination_added_to_group", requestID,
		zap.String(constvars.LoggingGroupIDKey, request.GroupID),
		zap.String(constvars.LoggingResourceIDKey, result.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCombinationInGroupSuccessMessage, result)
}

func (ctrl *CombinationController) UpdateCombination(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateCombination)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.CombinationID = chi.URLParam(r, constvars.URLParamResourceID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.CombinationUsecase.UpdateCombination(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCombinationSuccessMessage, result)
}

func (ctrl *CombinationController) DeleteCombination(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.CombinationUsecase.DeleteCombination(ctx, sess, chi.URLParam(r, constvars.URLParamResourceID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCombinationSuccessMessage, nil)
}
