package care_api

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// inventoryCareClient serves medicines and articles, which share one wire shape.
type inventoryCareClient struct {
	clients map[string]*resourceClient[care_dto.InventoryItem]
	Log     *zap.Logger
}

func NewInventoryCareClient(transport *Transport, logger *zap.Logger) contracts.InventoryCareClient {
	return &inventoryCareClient{
		clients: map[string]*resourceClient[care_dto.InventoryItem]{
			constvars.ResourceMedicines: newResourceClient[care_dto.InventoryItem](transport, constvars.ResourceMedicines, logger),
			constvars.ResourceArticles:  newResourceClient[care_dto.InventoryItem](transport, constvars.ResourceArticles, logger),
		},
		Log: logger,
	}
}

func (c *inventoryCareClient) client(kind string) (*resourceClient[care_dto.InventoryItem], error) {
	client, ok := c.clients[kind]
	if !ok {
		return nil, fmt.Errorf("unknown inventory kind %q", kind)
	}
	return client, nil
}

func (c *inventoryCareClient) ListItems(ctx context.Context, sess *session.Session, kind, patientID string) ([]care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("inventoryCareClient.ListItems called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	client, err := c.client(kind)
	if err != nil {
		return nil, err
	}
	return client.list(ctx, sess, patientQuery(patientID))
}

func (c *inventoryCareClient) CreateItem(ctx context.Context, sess *session.Session, kind string, request *care_dto.InventoryItem) (*care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("inventoryCareClient.CreateItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	client, err := c.client(kind)
	if err != nil {
		return nil, err
	}
	return client.create(ctx, sess, request)
}

func (c *inventoryCareClient) UpdateStock(ctx context.Context, sess *session.Session, kind, itemID string, payload care_dto.StockPayload) (*care_dto.InventoryItem, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("inventoryCareClient.UpdateStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingResourceIDKey, itemID),
	)

	client, err := c.client(kind)
	if err != nil {
		return nil, err
	}

	item := new(care_dto.InventoryItem)
	_, err = client.Transport.Do(ctx, Call{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.CarePathStock, kind, url.PathEscape(itemID)),
		Body:     payload,
		Resource: kind,
		Session:  sess,
	}, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *inventoryCareClient) DeleteItem(ctx context.Context, sess *session.Session, kind, itemID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("inventoryCareClient.DeleteItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, kind),
		zap.String(constvars.LoggingResourceIDKey, itemID),
	)

	client, err := c.client(kind)
	if err != nil {
		return err
	}
	return client.delete(ctx, sess, itemID)
}
