package reserves

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type reserveUsecase struct {
	CareClient  contracts.ReserveCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewReserveUsecase(
	careClient contracts.ReserveCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.ReserveUsecase {
	return &reserveUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

func (uc *reserveUsecase) ListReserves(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.ReserveEntry, error) {
	uc.Log.Info("reserveUsecase.ListReserves called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceReserves, patientID),
		[]contracts.CacheTag{cache.PatientTag(constvars.ResourceReserves, patientID)},
		func(ctx context.Context) ([]care_dto.ReserveEntry, error) {
			return uc.CareClient.ListReserves(ctx, sess, patientID)
		},
	)
}

// TransferToReserve appends an entry. The backend moves the amount out of the
// item's home or family stock, so the item list is stale afterwards too.
func (uc *reserveUsecase) TransferToReserve(ctx context.Context, sess *session.Session, request *requests.TransferToReserve) (*care_dto.ReserveEntry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reserveUsecase.TransferToReserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingResourceIDKey, request.ItemID),
	)

	entry, err := uc.CareClient.CreateReserve(ctx, sess, &care_dto.ReserveEntry{
		PatientID: request.PatientID,
		ItemID:    request.ItemID,
		ItemKind:  request.ItemKind,
		Source:    request.Source,
		Amount:    request.Amount,
		Price:     request.Price,
	})
	if err != nil {
		uc.Log.Error("reserveUsecase.TransferToReserve error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionTransfer,
		Resource:   constvars.ResourceReserves,
		ResourceID: entry.ID,
		PatientID:  request.PatientID,
	},
		cache.PatientTag(constvars.ResourceReserves, request.PatientID),
		cache.PatientTag(request.ItemKind, request.PatientID),
	)
	return entry, nil
}
