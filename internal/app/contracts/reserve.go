package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

type ReserveUsecase interface {
	ListReserves(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.ReserveEntry, error)
	TransferToReserve(ctx context.Context, sess *session.Session, request *requests.TransferToReserve) (*care_dto.ReserveEntry, error)
}

// ReserveCareClient has no update or delete: reserve entries are append-only.
type ReserveCareClient interface {
	ListReserves(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.ReserveEntry, error)
	CreateReserve(ctx context.Context, sess *session.Session, request *care_dto.ReserveEntry) (*care_dto.ReserveEntry, error)
}
