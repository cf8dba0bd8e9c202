package inventory

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockInventoryCareClient struct {
	mock.Mock
}

func (m *MockInventoryCareClient) ListItems(ctx context.Context, sess *session.Session, kind, patientID string) ([]care_dto.InventoryItem, error) {
	args := m.Called(ctx, sess, kind, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]care_dto.InventoryItem), args.Error(1)
}

func (m *MockInventoryCareClient) CreateItem(ctx context.Context, sess *session.Session, kind string, request *care_dto.InventoryItem) (*care_dto.InventoryItem, error) {
	args := m.Called(ctx, sess, kind, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.InventoryItem), args.Error(1)
}

func (m *MockInventoryCareClient) UpdateStock(ctx context.Context, sess *session.Session, kind, itemID string, payload care_dto.StockPayload) (*care_dto.InventoryItem, error) {
	args := m.Called(ctx, sess, kind, itemID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care_dto.InventoryItem), args.Error(1)
}

func (m *MockInventoryCareClient) DeleteItem(ctx context.Context, sess *session.Session, kind, itemID string) error {
	args := m.Called(ctx, sess, kind, itemID)
	return args.Error(0)
}

type recordingInvalidator struct {
	events []contracts.MutationEvent
	tags   [][]contracts.CacheTag
}

func (r *recordingInvalidator) AfterMutation(ctx context.Context, event contracts.MutationEvent, tags ...contracts.CacheTag) {
	r.events = append(r.events, event)
	r.tags = append(r.tags, tags)
}

func TestInventoryUsecase_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Total is split before it reaches the backend", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewInventoryUsecase(client, nil, invalidator, zap.NewNop())

		expectedPayload := &care_dto.InventoryItem{
			PatientID:       "patient-1",
			Name:            "Paracetamol",
			Price:           120,
			Quantity:        4,
			Packages:        3,
			UnitsPerPackage: 12,
		}
		client.On("CreateItem", ctx, (*session.Session)(nil), constvars.ResourceMedicines, expectedPayload).
			Return(&care_dto.InventoryItem{ID: "med-1", Name: "Paracetamol"}, nil)

		item, err := usecase.CreateItem(ctx, nil, &requests.CreateInventoryItem{
			Kind:            constvars.ResourceMedicines,
			PatientID:       "patient-1",
			Name:            "Paracetamol",
			Price:           120,
			Total:           40,
			UnitsPerPackage: 12,
		})
		require.NoError(t, err)

		assert.Equal(t, "med-1", item.ID)
		client.AssertExpectations(t)
		require.Len(t, invalidator.events, 1)
		assert.Equal(t, constvars.MutationActionCreate, invalidator.events[0].Action)
		assert.Equal(t, []contracts.CacheTag{{Resource: constvars.ResourceMedicines, Scope: "patient:patient-1"}}, invalidator.tags[0])
	})

	t.Run("Unknown kind never reaches the backend", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewInventoryUsecase(client, nil, invalidator, zap.NewNop())

		_, err := usecase.CreateItem(ctx, nil, &requests.CreateInventoryItem{Kind: "syringes", PatientID: "patient-1", Name: "x"})

		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, invalidator.events)
	})
}

func TestInventoryUsecase_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Add mode sends package payload and evicts the patient tag", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewInventoryUsecase(client, nil, invalidator, zap.NewNop())

		client.On("UpdateStock", ctx, (*session.Session)(nil), constvars.ResourceArticles, "art-1", care_dto.AddQuantityPayload{AddPackages: 3, AddQuantity: 0}).
			Return(&care_dto.InventoryItem{ID: "art-1", Packages: 5}, nil)

		total := 36
		item, err := usecase.UpdateStock(ctx, nil, &requests.UpdateStock{
			Kind:            constvars.ResourceArticles,
			PatientID:       "patient-1",
			ItemID:          "art-1",
			Mode:            constvars.StockModeAdd,
			Total:           &total,
			UnitsPerPackage: 12,
		})
		require.NoError(t, err)

		assert.Equal(t, 5, item.Packages)
		client.AssertExpectations(t)
		require.Len(t, invalidator.events, 1)
		assert.Equal(t, constvars.MutationActionStock, invalidator.events[0].Action)
	})

	t.Run("Backend failure skips invalidation", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewInventoryUsecase(client, nil, invalidator, zap.NewNop())

		quantity := 2
		client.On("UpdateStock", ctx, (*session.Session)(nil), constvars.ResourceMedicines, "med-1", care_dto.SetQuantityPayload{Quantity: 2}).
			Return(nil, errors.New("backend down"))

		_, err := usecase.UpdateStock(ctx, nil, &requests.UpdateStock{
			Kind:     constvars.ResourceMedicines,
			ItemID:   "med-1",
			Mode:     constvars.StockModeSet,
			Quantity: &quantity,
		})

		assert.EqualError(t, err, "backend down")
		assert.Empty(t, invalidator.events)
	})
}

func TestInventoryUsecase_ListAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("List without cache goes to the backend", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		usecase := NewInventoryUsecase(client, nil, &recordingInvalidator{}, zap.NewNop())

		client.On("ListItems", mock.Anything, (*session.Session)(nil), constvars.ResourceMedicines, "patient-1").
			Return([]care_dto.InventoryItem{{ID: "med-1"}, {ID: "med-2"}}, nil).Twice()

		for i := 0; i < 2; i++ {
			items, err := usecase.ListItems(ctx, nil, constvars.ResourceMedicines, "patient-1")
			require.NoError(t, err)
			assert.Len(t, items, 2)
		}
		client.AssertExpectations(t)
	})

	t.Run("Delete evicts the kind tag of the patient", func(t *testing.T) {
		client := new(MockInventoryCareClient)
		invalidator := &recordingInvalidator{}
		usecase := NewInventoryUsecase(client, nil, invalidator, zap.NewNop())

		client.On("DeleteItem", ctx, (*session.Session)(nil), constvars.ResourceArticles, "art-9").Return(nil)

		err := usecase.DeleteItem(ctx, nil, constvars.ResourceArticles, "patient-1", "art-9")
		require.NoError(t, err)

		require.Len(t, invalidator.tags, 1)
		assert.Equal(t, "articles:patient:patient-1", invalidator.tags[0][0].String())
	})
}
