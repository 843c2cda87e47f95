package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_car_repository.go -package=mocks github.com/agunich/AutoHub/internal/car/domain CarRepository

// CarRepository persists car listings. GetByID returns (nil, nil) when the
// car does not exist.
type CarRepository interface {
	GetAll(ctx context.Context, filter Filter) ([]Car, error)
	GetByID(ctx context.Context, id int64) (*Car, error)
	Create(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id int64) error
}
