package care_api

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type notificationCareClient struct {
	*resourceClient[care_dto.Notification]
}

func NewNotificationCareClient(transport *Transport, logger *zap.Logger) contracts.NotificationCareClient {
	return &notificationCareClient{
		resourceClient: newResourceClient[care_dto.Notification](transport, constvars.ResourceNotifications, logger),
	}
}

func (c *notificationCareClient) ListNotifications(ctx context.Context, sess *session.Session) ([]care_dto.Notification, error) {
	c.Log.Info("notificationCareClient.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.list(ctx, sess, nil)
}

func (c *notificationCareClient) CreateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error) {
	c.Log.Info("notificationCareClient.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.create(ctx, sess, request)
}

func (c *notificationCareClient) UpdateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error) {
	c.Log.Info("notificationCareClient.UpdateNotification called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)
	return c.update(ctx, sess, request.ID, request)
}

func (c *notificationCareClient) DeleteNotification(ctx context.Context, sess *session.Session, notificationID string) error {
	c.Log.Info("notificationCareClient.DeleteNotification called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, notificationID),
	)
	return c.delete(ctx, sess, notificationID)
}
