package inventory

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type inventoryUsecase struct {
	CareClient  contracts.InventoryCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewInventoryUsecase(
	careClient contracts.InventoryCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.InventoryUsecase {
	return &inventoryUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

// IsInventoryKind reports whether kind names one of the stock resources.
func IsInventoryKind(kind string) bool {
	return kind == constvars.ResourceMedicines || kind == constvars.ResourceArticles
}

func checkKind(kind string) error {
	if !IsInventoryKind(kind) {
		return exceptions.ErrURLParamIDValidation(fmt.Errorf("unknown inventory kind %q", kind), constvars.URLParamKind)
	}
	return nil
}

func (uc *inventoryUsecase) ListItems(ctx context.Context, sess *session.Session, kind, patientID string) ([]care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("inventoryUsecase.ListItems called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(kind, patientID),
		[]contracts.CacheTag{cache.PatientTag(kind, patientID)},
		func(ctx context.Context) ([]care_dto.InventoryItem, error) {
			return uc.CareClient.ListItems(ctx, sess, kind, patientID)
		},
	)
}

func (uc *inventoryUsecase) CreateItem(ctx context.Context, sess *session.Session, request *requests.CreateInventoryItem) (*care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("inventoryUsecase.CreateItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, request.Kind),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	if err := checkKind(request.Kind); err != nil {
		return nil, err
	}
	utils.SanitizeCreateInventoryItemRequest(request)

	packaging := SplitIntoPackages(request.Total, request.UnitsPerPackage)
	item, err := uc.CareClient.CreateItem(ctx, sess, request.Kind, &care_dto.InventoryItem{
		PatientID:       request.PatientID,
		Name:            request.Name,
		Price:           request.Price,
		Quantity:        packaging.RemainderUnits,
		Packages:        packaging.PackageCount,
		UnitsPerPackage: request.UnitsPerPackage,
		FamilyQuantity:  request.FamilyQuantity,
	})
	if err != nil {
		uc.Log.Error("inventoryUsecase.CreateItem error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionCreate,
		Resource:   request.Kind,
		ResourceID: item.ID,
		PatientID:  request.PatientID,
	}, cache.PatientTag(request.Kind, request.PatientID))
	return item, nil
}

func (uc *inventoryUsecase) UpdateStock(ctx context.Context, sess *session.Session, request *requests.UpdateStock) (*care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("inventoryUsecase.UpdateStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, request.Kind),
		zap.String(constvars.LoggingResourceIDKey, request.ItemID),
	)
	if err := checkKind(request.Kind); err != nil {
		return nil, err
	}

	update, err := NewStockUpdate(request)
	if err != nil {
		return nil, err
	}

	item, err := uc.CareClient.UpdateStock(ctx, sess, request.Kind, request.ItemID, update.Payload())
	if err != nil {
		uc.Log.Error("inventoryUsecase.UpdateStock error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionStock,
		Resource:   request.Kind,
		ResourceID: request.ItemID,
		PatientID:  request.PatientID,
	}, cache.PatientTag(request.Kind, request.PatientID))
	return item, nil
}

func (uc *inventoryUsecase) DeleteItem(ctx context.Context, sess *session.Session, kind, patientID, itemID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("inventoryUsecase.DeleteItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingResourceIDKey, itemID),
	)
	if err := checkKind(kind); err != nil {
		return err
	}

	err := uc.CareClient.DeleteItem(ctx, sess, kind, itemID)
	if err != nil {
		return err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionDelete,
		Resource:   kind,
		ResourceID: itemID,
		PatientID:  patientID,
	}, cache.PatientTag(kind, patientID))
	return nil
}
