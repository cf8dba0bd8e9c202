package notifications

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotificationCareClient struct {
	mock.Mock
}

func (m *MockNotificationCareClient) ListNotifications(ctx context.Context, sess *session.Session) ([]care_dto.Notification, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]care_dto.Notification), args.Error(1)
}

func (m *MockNotificationCareClient) CreateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error) {
	args := m.Called(ctx, sess, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.Notification), args.Error(1)
}

func (m *MockNotificationCareClient) UpdateNotification(ctx context.Context, sess *session.Session, request *care_dto.Notification) (*care_dto.Notification, error) {
	args := m.Called(ctx, sess, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.Notification), args.Error(1)
}

func (m *MockNotificationCareClient) DeleteNotification(ctx context.Context, sess *session.Session, notificationID string) error {
	args := m.Called(ctx, sess, notificationID)
	return args.Error(0)
}

type recordingInvalidator struct {
	events []contracts.MutationEvent
}

func (r *recordingInvalidator) AfterMutation(ctx context.Context, event contracts.MutationEvent, tags ...contracts.CacheTag) {
	r.events = append(r.events, event)
}

func TestNotificationUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create trims the text", func(t *testing.T) {
		client := new(MockNotificationCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewNotificationUsecase(client, nil, invalidator, zap.NewNop())

		client.On("CreateNotification", ctx, (*session.Session)(nil), &care_dto.Notification{
			Title:     "Visit",
			Message:   "Doctor at 10",
			PatientID: "p1",
		}).Return(&care_dto.Notification{ID: "n1", PatientID: "p1"}, nil)

		notification, err := usecase.CreateNotification(ctx, nil, &requests.CreateNotification{
			Title:     " Visit",
			Message:   "Doctor at 10 ",
			PatientID: "p1",
		})
		require.NoError(t, err)

		assert.Equal(t, "n1", notification.ID)
		require.Len(t, invalidator.events, 1)
		assert.Equal(t, constvars.MutationActionCreate, invalidator.events[0].Action)
		assert.Equal(t, "p1", invalidator.events[0].PatientID)
	})

	t.Run("Mark read sends only the read flag", func(t *testing.T) {
		client := new(MockNotificationCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewNotificationUsecase(client, nil, invalidator, zap.NewNop())

		client.On("UpdateNotification", ctx, (*session.Session)(nil), &care_dto.Notification{ID: "n1", Read: true}).
			Return(&care_dto.Notification{ID: "n1", Read: true}, nil)

		notification, err := usecase.MarkNotificationRead(ctx, nil, "n1")
		require.NoError(t, err)

		assert.True(t, notification.Read)
		assert.Equal(t, constvars.MutationActionUpdate, invalidator.events[0].Action)
		client.AssertExpectations(t)
	})

	t.Run("Failed delete publishes nothing", func(t *testing.T) {
		client := new(MockNotificationCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewNotificationUsecase(client, nil, invalidator, zap.NewNop())

		client.On("DeleteNotification", ctx, (*session.Session)(nil), "n1").Return(errors.New("gone"))

		err := usecase.DeleteNotification(ctx, nil, "n1")

		assert.EqualError(t, err, "gone")
		assert.Empty(t, invalidator.events)
	})
}
