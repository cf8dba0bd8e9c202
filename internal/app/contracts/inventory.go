package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

// InventoryUsecase serves medicines and articles; kind is the resource name.
type InventoryUsecase interface {
	ListItems(ctx context.Context, sess *session.Session, kind, patientID string) ([]care_dto.InventoryItem, error)
	CreateItem(ctx context.Context, sess *session.Session, request *requests.CreateInventoryItem) (*care_dto.InventoryItem, error)
	UpdateStock(ctx context.Context, sess *session.Session, request *requests.UpdateStock) (*care_dto.InventoryItem, error)
	DeleteItem(ctx context.Context, sess *session.Session, kind, patientID, itemID string) error
}

type InventoryCareClient interface {
	ListItems(ctx context.Context, sess *session.Session, kind, patientID string) ([]care_dto.InventoryItem, error)
	CreateItem(ctx context.Context, sess *session.Session, kind string, request *care_dto.InventoryItem) (*care_dto.InventoryItem, error)
	UpdateStock(ctx context.Context, sess *session.Session, kind, itemID string, payload care_dto.StockPayload) (*care_dto.InventoryItem, error)
	DeleteItem(ctx context.Context, sess *session.Session, kind, itemID string) error
}
