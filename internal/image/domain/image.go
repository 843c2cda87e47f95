package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_image_repository.go -package=mocks github.com/agunich/AutoHub/internal/image/domain ImageRepository

type Image struct {
	ID       int64
	CarID    int64
	ImageURL string
}

type ImageRepository interface {
	GetByCarID(ctx context.Context, carID int64) ([]Image, error)
	Create(ctx context.Context, image *Image) error
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
