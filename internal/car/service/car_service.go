package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/cache"
	"github.com/agunich/AutoHub/internal/car/domain"
	"github.com/agunich/AutoHub/internal/car/dto"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/notification"
	"github.com/agunich/AutoHub/pkg/constant"
)

const (
	allCarsCacheKey   = "cars:all"
	carCacheKeyPrefix = "cars:"
)

func carCacheKey(id int64) string {
	return carCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// CarService serves listings with cache-aside reads. A cache outage degrades
// to direct store reads; it never fails a request.
type CarService struct {
	repo     domain.CarRepository
	store    cache.Store
	notifier notification.Publisher
	log      zerolog.Logger
}

func NewCarService(repo domain.CarRepository, store cache.Store,
	notifier notification.Publisher, log zerolog.Logger) *CarService {
	return &CarService{
		repo:     repo,
		store:    store,
		notifier: notifier,
		log:      log.With().Str("component", "car_service").Logger(),
	}
}

// GetAll lists cars. Unfiltered listings go through the shared cache entry;
// filtered searches always hit the store.
func (s *CarService) GetAll(ctx context.Context, filter domain.Filter) ([]dto.CarOutput, error) {
	useCache := filter.Empty() && s.store != nil

	if useCache {
		var cached []dto.CarOutput
		hit, err := s.store.Get(ctx, allCarsCacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("cache read failed, falling back to store")
		} else if hit {
			return cached, nil
		}
	}

	cars, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CarOutput, 0, len(cars))
	for i := range cars {
		out = append(out, toCarOutput(&cars[i]))
	}

	if useCache {
		if err := s.store.Set(ctx, allCarsCacheKey, out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return out, nil
}

func (s *CarService) GetByID(ctx context.Context, id int64) (*dto.CarOutput, error) {
	key := carCacheKey(id)

	if s.store != nil {
		var cached dto.CarOutput
		hit, err := s.store.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("cache read failed, falling back to store")
		} else if hit {
			return &cached, nil
		}
	}

	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if car == nil {
		return nil, apperrors.ErrCarNotFound
	}

	out := toCarOutput(car)

	if s.store != nil {
		if err := s.store.Set(ctx, key, out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return &out, nil
}

// Create persists a new listing as ACTIVE, primes its cache entry and evicts
// the shared listing entry.
func (s *CarService) Create(ctx context.Context, input dto.CarInput) (*dto.CarOutput, error) {
	now := time.Now()

	car := &domain.Car{
		UserID:      input.UserID,
		Brand:       input.Brand,
		Model:       input.Model,
		Year:        input.Year,
		Mileage:     input.Mileage,
		Price:       input.Price,
		Description: input.Description,
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, err
	}

	s.log.Info().Int64("car_id", car.ID).Str("brand", car.Brand).Msg("car created")

	out := toCarOutput(car)

	if s.store != nil {
		if err := s.store.Set(ctx, carCacheKey(car.ID), out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}

		if err := s.store.Delete(ctx, allCarsCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("cache eviction failed")
		}
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("car listed: %s %s (%d)", car.Brand, car.Model, car.ID)
		if err := s.notifier.Publish(ctx, msg); err != nil {
			s.log.Warn().Err(err).Msg("listing notification not delivered")
		}
	}

	return &out, nil
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Delete(ctx, carCacheKey(id), allCarsCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("cache eviction failed")
		}
	}

	return nil
}

func toCarOutput(car *domain.Car) dto.CarOutput {
	return dto.CarOutput{
		ID:          car.ID,
		UserID:      car.UserID,
		Brand:       car.Brand,
		Model:       car.Model,
		Year:        car.Year,
		Mileage:     car.Mileage,
		Price:       car.Price,
		Description: car.Description,
		Status:      string(car.Status),
		CreatedAt:   car.CreatedAt,
		UpdatedAt:   car.UpdatedAt,
	}
}
