package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardomain "github.com/agunich/AutoHub/internal/car/domain"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/image/domain"
	"github.com/agunich/AutoHub/internal/image/service"
	"github.com/agunich/AutoHub/internal/mocks"
)

func newImageService(t *testing.T) (*service.ImageService, *mocks.MockImageRepository, *mocks.MockCarRepository, *mocks.MockObjectStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockImages := mocks.NewMockImageRepository(ctrl)
	mockCars := mocks.NewMockCarRepository(ctrl)
	mockBlobs := mocks.NewMockObjectStorage(ctrl)

	s := service.NewImageService(mockImages, mockCars, mockBlobs, zerolog.Nop())

	return s, mockImages, mockCars, mockBlobs
}

func TestImageService_Upload_Success(t *testing.T) {
	s, mockImages, mockCars, mockBlobs := newImageService(t)

	mockCars.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&cardomain.Car{ID: 7}, nil)

	var uploadedKey string

	mockBlobs.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, _ interface{}) (string, error) {
			uploadedKey = key
			return "http://minio:9000/autohub-images/" + key, nil
		})
	mockImages.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, image *domain.Image) error {
			image.ID = 1
			return nil
		})

	image, err := s.Upload(context.Background(), 7, "front.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), image.CarID)
	assert.True(t, strings.HasPrefix(uploadedKey, "cars/7/"))
	assert.True(t, strings.HasSuffix(uploadedKey, ".jpg"))
	assert.Contains(t, image.ImageURL, uploadedKey)
}

func TestImageService_Upload_UnknownCar(t *testing.T) {
	s, _, mockCars, _ := newImageService(t)

	mockCars.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	image, err := s.Upload(context.Background(), 99, "front.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"))

	assert.ErrorIs(t, err, apperrors.ErrCarNotFound)
	assert.Nil(t, image)
}

func TestImageService_GetURLsByCarID(t *testing.T) {
	s, mockImages, _, _ := newImageService(t)

	mockImages.EXPECT().GetByCarID(gomock.Any(), int64(7)).Return([]domain.Image{
		{ID: 1, CarID: 7, ImageURL: "http://minio:9000/autohub-images/cars/7/a.jpg"},
		{ID: 2, CarID: 7, ImageURL: "http://minio:9000/autohub-images/cars/7/b.jpg"},
	}, nil)

	urls, err := s.GetURLsByCarID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://minio:9000/autohub-images/cars/7/a.jpg",
		"http://minio:9000/autohub-images/cars/7/b.jpg",
	}, urls)
}

func TestImageService_Delete_UnknownImage(t *testing.T) {
	s, mockImages, _, _ := newImageService(t)

	mockImages.EXPECT().Exists(gomock.Any(), int64(5)).Return(false, nil)

	err := s.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrImageNotFound)
}

func TestImageService_Delete_Success(t *testing.T) {
	s, mockImages, _, _ := newImageService(t)

	mockImages.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
	mockImages.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	err := s.Delete(context.Background(), 5)

	require.NoError(t, err)
}
