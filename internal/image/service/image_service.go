package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cardomain "github.com/agunich/AutoHub/internal/car/domain"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/image/domain"
	"github.com/agunich/AutoHub/internal/image/storage"
)

// ImageService uploads listing images to the object store and records their
// URLs against the owning car.
type ImageService struct {
	images domain.ImageRepository
	cars   cardomain.CarRepository
	blobs  storage.ObjectStorage
	log    zerolog.Logger
}

func NewImageService(images domain.ImageRepository, cars cardomain.CarRepository,
	blobs storage.ObjectStorage, log zerolog.Logger) *ImageService {
	return &ImageService{
		images: images,
		cars:   cars,
		blobs:  blobs,
		log:    log.With().Str("component", "image_service").Logger(),
	}
}

// Upload stores the blob and links the resulting URL to the car. The object
// key is randomized so uploads with the same filename never collide.
func (s *ImageService) Upload(ctx context.Context, carID int64, filename, contentType string, body io.Reader) (*domain.Image, error) {
	car, err := s.cars.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if car == nil {
		return nil, apperrors.ErrCarNotFound
	}

	key := fmt.Sprintf("cars/%d/%s%s", carID, uuid.NewString(), path.Ext(filename))

	url, err := s.blobs.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &domain.Image{
		CarID:    carID,
		ImageURL: url,
	}

	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}

	s.log.Info().Int64("car_id", carID).Str("url", url).Msg("image uploaded")

	return image, nil
}

// GetURLsByCarID lists the image URLs attached to a car.
func (s *ImageService) GetURLsByCarID(ctx context.Context, carID int64) ([]string, error) {
	images, err := s.images.GetByCarID(ctx, carID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.ImageURL)
	}

	return urls, nil
}

func (s *ImageService) Delete(ctx context.Context, id int64) error {
	exists, err := s.images.Exists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return apperrors.ErrImageNotFound
	}

	return s.images.Delete(ctx, id)
}
