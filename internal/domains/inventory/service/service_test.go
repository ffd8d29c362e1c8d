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
	"facilio/internal/domains/inventory/model"
	"facilio/internal/domains/inventory/model/dto"
	"facilio/internal/domains/inventory/service"
	"facilio/shared/cache"
	cacheMocks "facilio/shared/cache/mocks"
	"facilio/shared/constant"
	"facilio/shared/failure"
	gDto "facilio/shared/dto"
)

func newService(t *testing.T) (service.Item, *inventoryMocks.MockItem, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := inventoryMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Invalidation runs in a fire-and-forget goroutine.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestItemService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *inventoryMocks.MockItem)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *inventoryMocks.MockItem) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(repo *inventoryMocks.MockItem) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Create(testCtx(), dto.CreateItemRequest{
				Name:     "Projector",
				SKU:      "PRJ-01",
				Quantity: 5,
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemService_GetAll(t *testing.T) {
	t.Run("cache miss fetches from the repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		items := []model.Item{
			{ID: "item-1", Name: "Projector", SKU: "PRJ-01", Quantity: 5},
			{ID: "item-2", Name: "Speaker", SKU: "SPK-01", Quantity: 2},
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil)

		res, err := svc.GetAll(testCtx(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(testCtx(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestItemService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Item{ID: "item-1", Name: "Projector", Quantity: 5}, nil)

		res, err := svc.Get(testCtx(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := svc.Get(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Adjust(t *testing.T) {
	t.Run("restock increments the quantity", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().AdjustQuantity(gomock.Any(), "item-1", 10).Return(nil)

		err := svc.Adjust(testCtx(), dto.AdjustItemRequest{Delta: 10}, "item-1")

		assert.NoError(t, err)
	})

	t.Run("write-off below zero is a conflict", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			AdjustQuantity(gomock.Any(), "item-1", -99).
			Return(failure.Conflict("insufficient quantity for inventory item"))

		err := svc.Adjust(testCtx(), dto.AdjustItemRequest{Delta: -99}, "item-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			AdjustQuantity(gomock.Any(), "missing", 1).
			Return(failure.NotFound("inventory item not found"))

		err := svc.Adjust(testCtx(), dto.AdjustItemRequest{Delta: 1}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Availability(t *testing.T) {
	t.Run("reports committed quantity and low stock", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		item := model.Item{ID: "item-1", Quantity: 2, LowStockThreshold: 3}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		mockRepo.EXPECT().SumActiveClaims(gomock.Any(), "item-1").Return(7, nil)

		res, err := svc.Availability(testCtx(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.OnHand)
		assert.Equal(t, 7, res.Committed)
		assert.True(t, res.LowStock)
	})

	t.Run("healthy stock is not low", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		item := model.Item{ID: "item-1", Quantity: 50, LowStockThreshold: 3}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		mockRepo.EXPECT().SumActiveClaims(gomock.Any(), "item-1").Return(0, nil)

		res, err := svc.Availability(testCtx(), "item-1")

		assert.NoError(t, err)
		assert.False(t, res.LowStock)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := svc.Availability(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(testCtx(), dto.UpdateItemRequest{}, "item-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing item is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(testCtx(), dto.UpdateItemRequest{Name: "Projector HD"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(testCtx(), dto.UpdateItemRequest{Name: "Projector HD"}, "item-1")

		assert.NoError(t, err)
	})
}
