package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"facilio/config"
	"facilio/infras/otel/mocks"
	s3Mocks "facilio/infras/s3/mocks"
	facilityMocks "facilio/internal/domains/facility/mocks"
	"facilio/internal/domains/facility/model"
	"facilio/internal/domains/facility/model/dto"
	"facilio/internal/domains/facility/service"
	"facilio/shared/cache"
	cacheMocks "facilio/shared/cache/mocks"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
)

func newService(t *testing.T) (service.Facility, *facilityMocks.MockFacility, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := facilityMocks.NewMockFacility(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "facilio-test"

	// Invalidation runs in a fire-and-forget goroutine.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockS3
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestFacilityService_Create(t *testing.T) {
	t.Run("without image", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Create(testCtx(), dto.CreateFacilityRequest{Name: "Hall A", Capacity: 50})

		assert.NoError(t, err)
	})

	t.Run("with image uploads before inserting", func(t *testing.T) {
		svc, mockRepo, mockS3 := newService(t)

		image := &multipart.FileHeader{Filename: "hall.png"}

		gomock.InOrder(
			mockS3.EXPECT().
				UploadFile(gomock.Any(), "facilio-test", model.EntityName, gomock.Any(), image, gomock.Any()).
				Return("https://cdn.example.com/facility/hall.png", nil),
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)

		err := svc.Create(testCtx(), dto.CreateFacilityRequest{Name: "Hall A", Image: image})

		assert.NoError(t, err)
	})

	t.Run("failed insert removes the uploaded image", func(t *testing.T) {
		svc, mockRepo, mockS3 := newService(t)

		image := &multipart.FileHeader{Filename: "hall.png"}

		gomock.InOrder(
			mockS3.EXPECT().
				UploadFile(gomock.Any(), "facilio-test", model.EntityName, gomock.Any(), image, gomock.Any()).
				Return("https://cdn.example.com/facility/hall.png", nil),
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error")),
			mockS3.EXPECT().
				DeleteFile(gomock.Any(), "facilio-test", model.EntityName, gomock.Any()).
				Return(nil),
		)

		err := svc.Create(testCtx(), dto.CreateFacilityRequest{Name: "Hall A", Image: image})

		assert.Error(t, err)
	})

	t.Run("failed upload aborts the creation", func(t *testing.T) {
		svc, _, mockS3 := newService(t)

		image := &multipart.FileHeader{Filename: "hall.png"}

		mockS3.EXPECT().
			UploadFile(gomock.Any(), "facilio-test", model.EntityName, gomock.Any(), image, gomock.Any()).
			Return("", errors.New("s3 error"))

		err := svc.Create(testCtx(), dto.CreateFacilityRequest{Name: "Hall A", Image: image})

		assert.Error(t, err)
	})
}

func TestFacilityService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{ID: "facility-1", Name: "Hall A"}, nil)

		res, err := svc.Get(testCtx(), "facility-1")

		assert.NoError(t, err)
		assert.Equal(t, "facility-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Facility{}, nil)

		_, err := svc.Get(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFacilityService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	facilities := []model.Facility{
		{ID: "facility-1", Name: "Hall A"},
		{ID: "facility-2", Name: "Hall B"},
	}

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(facilities, nil)

	res, err := svc.GetAll(testCtx(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Facilities, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestFacilityService_Update(t *testing.T) {
	t.Run("replaces the old image after a successful update", func(t *testing.T) {
		svc, mockRepo, mockS3 := newService(t)

		current := model.Facility{ID: "facility-1", Name: "Hall A", Image: "https://cdn.example.com/facility/old.png"}
		image := &multipart.FileHeader{Filename: "new.png"}

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil),
			mockS3.EXPECT().
				UploadFile(gomock.Any(), "facilio-test", model.EntityName, gomock.Any(), image, gomock.Any()).
				Return("https://cdn.example.com/facility/new.png", nil),
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			mockS3.EXPECT().
				GetObjectNameFromURL("facilio-test", current.Image).
				Return("old.png"),
			mockS3.EXPECT().
				DeleteFile(gomock.Any(), "facilio-test", model.EntityName, "old.png").
				Return(nil),
		)

		err := svc.Update(testCtx(), dto.UpdateFacilityRequest{Image: image}, "facility-1")

		assert.NoError(t, err)
	})

	t.Run("missing facility is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Facility{}, nil)

		err := svc.Update(testCtx(), dto.UpdateFacilityRequest{Name: "Hall B"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFacilityService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(testCtx(), "facility-1")

		assert.NoError(t, err)
	})

	t.Run("missing facility is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
