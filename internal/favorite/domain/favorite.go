package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_favorite_repository.go -package=mocks github.com/agunich/AutoHub/internal/favorite/domain FavoriteRepository

type Favorite struct {
	ID     int64
	UserID int64
	CarID  int64
}

type FavoriteRepository interface {
	GetAll(ctx context.Context) ([]Favorite, error)
	GetByID(ctx context.Context, id int64) (*Favorite, error)
	Create(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, id int64) error
}
