package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_review_repository.go -package=mocks github.com/agunich/AutoHub/internal/review/domain ReviewRepository

type Review struct {
	ID        int64
	UserID    int64
	CarID     int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	Create(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id int64) error
}
