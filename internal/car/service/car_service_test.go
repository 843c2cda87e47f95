package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agunich/AutoHub/internal/car/domain"
	"github.com/agunich/AutoHub/internal/car/dto"
	"github.com/agunich/AutoHub/internal/car/service"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/mocks"
	"github.com/agunich/AutoHub/pkg/constant"
)

func newCarService(t *testing.T) (*service.CarService, *mocks.MockCarRepository, *mocks.MockStore, *mocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockCarRepository(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockNotifier := mocks.NewMockPublisher(ctrl)

	s := service.NewCarService(mockRepo, mockStore, mockNotifier, zerolog.Nop())

	return s, mockRepo, mockStore, mockNotifier
}

func sampleCar(id int64) domain.Car {
	return domain.Car{
		ID:      id,
		UserID:  1,
		Brand:   "Toyota",
		Model:   "Corolla",
		Year:    2020,
		Mileage: 42000,
		Price:   15000,
		Status:  domain.StatusActive,
	}
}

func TestCarService_GetAll_CacheMissPopulatesCache(t *testing.T) {
	s, mockRepo, mockStore, _ := newCarService(t)

	mockStore.EXPECT().Get(gomock.Any(), "cars:all", gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), domain.Filter{}).Return([]domain.Car{sampleCar(1)}, nil)
	mockStore.EXPECT().Set(gomock.Any(), "cars:all", gomock.Any(), constant.CacheTTL).Return(nil)

	out, err := s.GetAll(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Toyota", out[0].Brand)
}

func TestCarService_GetAll_CacheHitSkipsRepository(t *testing.T) {
	s, _, mockStore, _ := newCarService(t)

	mockStore.EXPECT().Get(gomock.Any(), "cars:all", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			cached := dest.(*[]dto.CarOutput)
			*cached = []dto.CarOutput{{ID: 1, Brand: "Cached"}}

			return true, nil
		})

	out, err := s.GetAll(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cached", out[0].Brand)
}

func TestCarService_GetAll_FilteredSearchBypassesCache(t *testing.T) {
	s, mockRepo, _, _ := newCarService(t)

	minYear := 2018
	filter := domain.Filter{Brand: "Toyota", MinYear: &minYear}

	// No cache expectations: filtered listings never touch the store.
	mockRepo.EXPECT().GetAll(gomock.Any(), filter).Return([]domain.Car{sampleCar(1)}, nil)

	out, err := s.GetAll(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestCarService_GetAll_CacheErrorFallsBackToRepository(t *testing.T) {
	s, mockRepo, mockStore, _ := newCarService(t)

	mockStore.EXPECT().Get(gomock.Any(), "cars:all", gomock.Any()).
		Return(false, errors.New("redis down"))
	mockRepo.EXPECT().GetAll(gomock.Any(), domain.Filter{}).Return([]domain.Car{sampleCar(1)}, nil)

	out, err := s.GetAll(context.Background(), domain.Filter{})

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestCarService_GetByID_CacheMiss(t *testing.T) {
	s, mockRepo, mockStore, _ := newCarService(t)

	car := sampleCar(7)

	mockStore.EXPECT().Get(gomock.Any(), "cars:7", gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&car, nil)
	mockStore.EXPECT().Set(gomock.Any(), "cars:7", gomock.Any(), constant.CacheTTL).Return(nil)

	out, err := s.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "ACTIVE", out.Status)
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	s, mockRepo, mockStore, _ := newCarService(t)

	mockStore.EXPECT().Get(gomock.Any(), "cars:99", gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	out, err := s.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrCarNotFound)
	assert.Nil(t, out)
}

func TestCarService_Create_PrimesCacheAndEvictsListing(t *testing.T) {
	s, mockRepo, mockStore, mockNotifier := newCarService(t)

	input := dto.CarInput{
		UserID:  1,
		Brand:   "Honda",
		Model:   "Civic",
		Year:    2021,
		Mileage: 10000,
		Price:   18000,
	}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car *domain.Car) error {
			car.ID = 3
			return nil
		})
	mockStore.EXPECT().Set(gomock.Any(), "cars:3", gomock.Any(), constant.CacheTTL).Return(nil)
	mockStore.EXPECT().Delete(gomock.Any(), "cars:all").Return(nil)
	mockNotifier.EXPECT().Publish(gomock.Any(), "car listed: Honda Civic (3)").Return(nil)

	out, err := s.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "ACTIVE", out.Status)
}

func TestCarService_Delete_EvictsBothCacheEntries(t *testing.T) {
	s, mockRepo, mockStore, _ := newCarService(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	mockStore.EXPECT().Delete(gomock.Any(), "cars:3", "cars:all").Return(nil)

	err := s.Delete(context.Background(), 3)

	require.NoError(t, err)
}

func TestCarService_NilCacheReadsDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockCarRepository(ctrl)
	s := service.NewCarService(mockRepo, nil, nil, zerolog.Nop())

	mockRepo.EXPECT().GetAll(gomock.Any(), domain.Filter{}).Return([]domain.Car{sampleCar(1)}, nil)

	out, err := s.GetAll(context.Background(), domain.Filter{})

	require.NoError(t, err)
	assert.Len(t, out, 1)
}
