package controllers

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InventoryController serves medicines and articles. The kind comes from the route.
type InventoryController struct {
	Log              *zap.Logger
	InventoryUsecase contracts.InventoryUsecase
}

func NewInventoryController(logger *zap.Logger, inventoryUsecase contracts.InventoryUsecase) *InventoryController {
	return &InventoryController{
		Log:              logger,
		InventoryUsecase: inventoryUsecase,
	}
}

func (ctrl *InventoryController) ListItems(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	kind := chi.URLParam(r, constvars.URLParamKind)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InventoryUsecase.ListItems(ctx, sess, kind, chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.FindInventorySuccessMessage, kind), result)
}

func (ctrl *InventoryController) CreateItem(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateInventoryItem)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Kind = chi.URLParam(r, constvars.URLParamKind)
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InventoryUsecase.CreateItem(ctx, sess, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateInventorySuccessMessage, request.Kind), result)
}

func (ctrl *InventoryController) UpdateStock(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateStock)
	err = decodeRequest(ctrl.Log, r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Kind = chi.URLParam(r, constvars.URLParamKind)
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
	request.ItemID = chi.URLParam(r, constvars.URLParamResourceID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InventoryUsecase.UpdateStock(ctx, sess, request)
	if err != nil {
		ctrl.Log.Error("Failed to update stock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingResourceIDKey, request.ItemID),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateStockSuccessMessage, request.Kind), result)
}

func (ctrl *InventoryController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	kind := chi.URLParam(r, constvars.URLParamKind)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.InventoryUsecase.DeleteItem(ctx, sess, kind,
		chi.URLParam(r, constvars.URLParamPatientID),
		chi.URLParam(r, constvars.URLParamResourceID),
	)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteInventorySuccessMessage, kind), nil)
}
