package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/favorite/domain"
	"github.com/agunich/AutoHub/internal/favorite/dto"
	"github.com/agunich/AutoHub/internal/favorite/service"
	"github.com/agunich/AutoHub/internal/mocks"
	"github.com/agunich/AutoHub/pkg/constant"
)

func newFavoriteService(t *testing.T) (*service.FavoriteService, *mocks.MockFavoriteRepository, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFavoriteRepository(ctrl)
	mockStore := mocks.NewMockStore(ctrl)

	s := service.NewFavoriteService(mockRepo, mockStore, zerolog.Nop())

	return s, mockRepo, mockStore
}

func TestFavoriteService_GetAll_CacheMiss(t *testing.T) {
	s, mockRepo, mockStore := newFavoriteService(t)

	mockStore.EXPECT().Get(gomock.Any(), "favorites:all", gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.Favorite{
		{ID: 1, UserID: 2, CarID: 3},
	}, nil)
	mockStore.EXPECT().Set(gomock.Any(), "favorites:all", gomock.Any(), constant.CacheTTL).Return(nil)

	out, err := s.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].CarID)
}

func TestFavoriteService_GetAll_CacheHit(t *testing.T) {
	s, _, mockStore := newFavoriteService(t)

	mockStore.EXPECT().Get(gomock.Any(), "favorites:all", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			cached := dest.(*[]dto.FavoriteOutput)
			*cached = []dto.FavoriteOutput{{ID: 1, UserID: 2, CarID: 3}}

			return true, nil
		})

	out, err := s.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFavoriteService_GetByID_NotFound(t *testing.T) {
	s, mockRepo, mockStore := newFavoriteService(t)

	mockStore.EXPECT().Get(gomock.Any(), "favorites:9", gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

	out, err := s.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrFavoriteNotFound)
	assert.Nil(t, out)
}

func TestFavoriteService_Create_PrimesCacheAndEvictsListing(t *testing.T) {
	s, mockRepo, mockStore := newFavoriteService(t)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, favorite *domain.Favorite) error {
			favorite.ID = 4
			return nil
		})
	mockStore.EXPECT().Set(gomock.Any(), "favorites:4", gomock.Any(), constant.CacheTTL).Return(nil)
	mockStore.EXPECT().Delete(gomock.Any(), "favorites:all").Return(nil)

	out, err := s.Create(context.Background(), dto.FavoriteInput{UserID: 2, CarID: 3})

	require.NoError(t, err)
	assert.Equal(t, int64(4), out.ID)
}

func TestFavoriteService_Delete_EvictsBothCacheEntries(t *testing.T) {
	s, mockRepo, mockStore := newFavoriteService(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	mockStore.EXPECT().Delete(gomock.Any(), "favorites:4", "favorites:all").Return(nil)

	err := s.Delete(context.Background(), 4)

	require.NoError(t, err)
}
