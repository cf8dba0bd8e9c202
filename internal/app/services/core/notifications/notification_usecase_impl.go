package notifications

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	CareClient  contracts.NotificationCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewNotificationUsecase(
	careClient contracts.NotificationCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, sess *session.Session) ([]care_dto.Notification, error) {
	uc.Log.Info("notificationUsecase.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceNotifications, "all"),
		[]contracts.CacheTag{cache.GlobalTag(constvars.ResourceNotifications)},
		func(ctx context.Context) ([]care_dto.Notification, error) {
			return uc.CareClient.ListNotifications(ctx, sess)
		},
	)
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, sess *session.Session, request *requests.CreateNotification) (*care_dto.Notification, error) {
	notification, err := uc.CareClient.CreateNotification(ctx, sess, &care_dto.Notification{
		Title:     strings.TrimSpace(request.Title),
		Message:   strings.TrimSpace(request.Message),
		PatientID: request.PatientID,
	})
	if err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, constvars.MutationActionCreate, notification.ID, request.PatientID)
	return notification, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, sess *session.Session, notificationID string) (*care_dto.Notification, error) {
	notification, err := uc.CareClient.UpdateNotification(ctx, sess, &care_dto.Notification{
		ID:   notificationID,
		Read: true,
	})
	if err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, constvars.MutationActionUpdate, notificationID, notification.PatientID)
	return notification, nil
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, sess *session.Session, notificationID string) error {
	err := uc.CareClient.DeleteNotification(ctx, sess, notificationID)
	if err != nil {
		return err
	}

	uc.afterMutation(ctx, constvars.MutationActionDelete, notificationID, "")
	return nil
}

func (uc *notificationUsecase) afterMutation(ctx context.Context, action, notificationID, patientID string) {
	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     action,
		Resource:   constvars.ResourceNotifications,
		ResourceID: notificationID,
		PatientID:  patientID,
	}, cache.GlobalTag(constvars.ResourceNotifications))
}
