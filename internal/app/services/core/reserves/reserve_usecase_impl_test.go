package reserves

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

type MockReserveCareClient struct {
	mock.Mock
}

func (m *MockReserveCareClient) ListReserves(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.ReserveEntry, error) {
	args := m.Called(ctx, sess, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]care_dto.ReserveEntry), args.Error(1)
}

func (m *MockReserveCareClient) CreateReserve(ctx context.Context, sess *session.Session, request *care_dto.ReserveEntry) (*care_dto.ReserveEntry, error) {
	args := m.Called(ctx, sess, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.ReserveEntry), args.Error(1)
}

type recordingInvalidator struct {
	events []contracts.MutationEvent
	tags   [][]contracts.CacheTag
}

func (r *recordingInvalidator) AfterMutation(ctx context.Context, event contracts.MutationEvent, tags ...contracts.CacheTag) {
	r.events = append(r.events, event)
	r.tags = append(r.tags, tags)
}

func TestReserveUsecase_TransferToReserve(t *testing.T) {
	ctx := context.Background()
	request := &requests.TransferToReserve{
		PatientID: "p1",
		ItemID:    "med-1",
		ItemKind:  constvars.ResourceMedicines,
		Source:    constvars.StockSourceFamily,
		Amount:    2,
		Price:     120,
	}

	t.Run("Transfer evicts reserves and the stock list of the item kind", func(t *testing.T) {
		client := new(MockReserveCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewReserveUsecase(client, nil, invalidator, zap.NewNop())

		client.On("CreateReserve", ctx, (*session.Session)(nil), &care_dto.ReserveEntry{
			PatientID: "p1",
			ItemID:    "med-1",
			ItemKind:  constvars.ResourceMedicines,
			Source:    constvars.StockSourceFamily,
			Amount:    2,
			Price:     120,
		}).Return(&care_dto.ReserveEntry{ID: "r1"}, nil)

		entry, err := usecase.TransferToReserve(ctx, nil, request)
		require.NoError(t, err)

		assert.Equal(t, "r1", entry.ID)
		require.Len(t, invalidator.tags, 1)
		assert.ElementsMatch(t, []string{"reserves:patient:p1", "medicines:patient:p1"}, []string{
			invalidator.tags[0][0].String(),
			invalidator.tags[0][1].String(),
		})
		assert.Equal(t, constvars.MutationActionTransfer, invalidator.events[0].Action)
	})

	t.Run("Rejected transfer leaves the cache alone", func(t *testing.T) {
		client := new(MockReserveCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewReserveUsecase(client, nil, invalidator, zap.NewNop())

		client.On("CreateReserve", ctx, (*session.Session)(nil), mock.Anything).Return(nil, errors.New("not enough stock"))

		_, err := usecase.TransferToReserve(ctx, nil, request)

		assert.EqualError(t, err, "not enough stock")
		assert.Empty(t, invalidator.events)
	})
}
