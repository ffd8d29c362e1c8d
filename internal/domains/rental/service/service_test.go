package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"facilio/config"
	"facilio/infras/otel/mocks"
	inventoryMocks "facilio/internal/domains/inventory/mocks"
	rentalMocks "facilio/internal/domains/rental/mocks"
	"facilio/internal/domains/rental/model"
	"facilio/internal/domains/rental/model/dto"
	"facilio/internal/domains/rental/service"
	"facilio/shared/cache"
	cacheMocks "facilio/shared/cache/mocks"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
)

func newService(t *testing.T) (service.Rental, *rentalMocks.MockRental, *inventoryMocks.MockItem) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := rentalMocks.NewMockRental(ctrl)
	mockItemRepo := inventoryMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Invalidation runs in a fire-and-forget goroutine.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockItemRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockItemRepo
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRentalService_CheckOut(t *testing.T) {
	req := dto.CheckOutRequest{
		ItemID:     "item-1",
		Quantity:   3,
		RenterName: "Andi",
	}

	t.Run("decrements stock then records the rental", func(t *testing.T) {
		svc, mockRepo, mockItemRepo := newService(t)

		gomock.InOrder(
			mockItemRepo.EXPECT().AdjustQuantity(gomock.Any(), "item-1", -3).Return(nil),
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := svc.CheckOut(testCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ItemID)
		assert.Equal(t, model.StatusOut, res.Status)
	})

	t.Run("insufficient stock is a conflict and nothing is recorded", func(t *testing.T) {
		svc, _, mockItemRepo := newService(t)

		mockItemRepo.EXPECT().
			AdjustQuantity(gomock.Any(), "item-1", -3).
			Return(failure.Conflict("insufficient quantity for inventory item"))

		_, err := svc.CheckOut(testCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("failed insert compensates the decrement", func(t *testing.T) {
		svc, mockRepo, mockItemRepo := newService(t)

		gomock.InOrder(
			mockItemRepo.EXPECT().AdjustQuantity(gomock.Any(), "item-1", -3).Return(nil),
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error")),
			mockItemRepo.EXPECT().AdjustQuantity(gomock.Any(), "item-1", 3).Return(nil),
		)

		_, err := svc.CheckOut(testCtx(), req)

		assert.Error(t, err)
	})
}

func TestRentalService_Return(t *testing.T) {
	t.Run("returns the quantity to stock", func(t *testing.T) {
		svc, mockRepo, mockItemRepo := newService(t)

		rental := model.Rental{
			ID:       "rental-1",
			ItemID:   "item-1",
			Quantity: 3,
			Status:   model.StatusOut,
		}

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rental, nil),
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			mockItemRepo.EXPECT().AdjustQuantity(gomock.Any(), "item-1", 3).Return(nil),
		)

		err := svc.Return(testCtx(), "rental-1")

		assert.NoError(t, err)
	})

	t.Run("already returned is a bad request", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		rental := model.Rental{
			ID:       "rental-1",
			ItemID:   "item-1",
			Quantity: 3,
			Status:   model.StatusReturned,
		}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rental, nil)

		err := svc.Return(testCtx(), "rental-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing rental is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rental{}, nil)

		err := svc.Return(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRentalService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Rental{ID: "rental-1", ItemID: "item-1", Quantity: 3}, nil)

		res, err := svc.Get(testCtx(), "rental-1")

		assert.NoError(t, err)
		assert.Equal(t, "rental-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Rental{}, nil)

		_, err := svc.Get(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRentalService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	rentals := []model.Rental{
		{ID: "rental-1", ItemID: "item-1", Quantity: 3},
		{ID: "rental-2", ItemID: "item-2", Quantity: 1},
	}

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rentals, nil)

	res, err := svc.GetAll(testCtx(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rentals, 2)
	assert.Equal(t, 2, res.TotalData)
}
