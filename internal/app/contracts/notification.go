package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, sess *session.Session) ([]care_dto.Notification, error)
	CreateNotification(ctx context.Context, sess *session.Session, request *requests.CreateNotification) (*care_dto.Notification, error)
	MarkNotificationRead(ctx context.Context, sess *session.Session, notificationID string) (*care_dto.Notification, error)
	DeleteNotification(ctx context.Context, sess *session.Session, notificationID string) error
}

type NotificationCareClient interface {
	ListNotifications(ctx context.Context, sess *session.Session) ([]care_dto.Notification, error)
	CreateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error)
	UpdateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error)
	DeleteNotification(ctx context.Context, sess *session.Session, notificationID string) error
}
