package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/cache"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/favorite/domain"
	"github.com/agunich/AutoHub/internal/favorite/dto"
	"github.com/agunich/AutoHub/pkg/constant"
)

const (
	allFavoritesCacheKey   = "favorites:all"
	favoriteCacheKeyPrefix = "favorites:"
)

func favoriteCacheKey(id int64) string {
	return favoriteCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// FavoriteService mirrors the listing cache discipline: reads are
// cache-aside, creation primes the per-id entry and evicts the shared one.
type FavoriteService struct {
	repo  domain.FavoriteRepository
	store cache.Store
	log   zerolog.Logger
}

func NewFavoriteService(repo domain.FavoriteRepository, store cache.Store, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{
		repo:  repo,
		store: store,
		log:   log.With().Str("component", "favorite_service").Logger(),
	}
}

func (s *FavoriteService) GetAll(ctx context.Context) ([]dto.FavoriteOutput, error) {
	if s.store != nil {
		var cached []dto.FavoriteOutput
		hit, err := s.store.Get(ctx, allFavoritesCacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("cache read failed, falling back to store")
		} else if hit {
			return cached, nil
		}
	}

	favorites, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FavoriteOutput, 0, len(favorites))
	for i := range favorites {
		out = append(out, toFavoriteOutput(&favorites[i]))
	}

	if s.store != nil {
		if err := s.store.Set(ctx, allFavoritesCacheKey, out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return out, nil
}

func (s *FavoriteService) GetByID(ctx context.Context, id int64) (*dto.FavoriteOutput, error) {
	key := favoriteCacheKey(id)

	if s.store != nil {
		var cached dto.FavoriteOutput
		hit, err := s.store.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("cache read failed, falling back to store")
		} else if hit {
			return &cached, nil
		}
	}

	favorite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if favorite == nil {
		return nil, apperrors.ErrFavoriteNotFound
	}

	out := toFavoriteOutput(favorite)

	if s.store != nil {
		if err := s.store.Set(ctx, key, out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return &out, nil
}

func (s *FavoriteService) Create(ctx context.Context, input dto.FavoriteInput) (*dto.FavoriteOutput, error) {
	favorite := &domain.Favorite{
		UserID: input.UserID,
		CarID:  input.CarID,
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	out := toFavoriteOutput(favorite)

	if s.store != nil {
		if err := s.store.Set(ctx, favoriteCacheKey(favorite.ID), out, constant.CacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}

		if err := s.store.Delete(ctx, allFavoritesCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("cache eviction failed")
		}
	}

	return &out, nil
}

func (s *FavoriteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Delete(ctx, favoriteCacheKey(id), allFavoritesCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("cache eviction failed")
		}
	}

	return nil
}

func toFavoriteOutput(favorite *domain.Favorite) dto.FavoriteOutput {
	return dto.FavoriteOutput{
		ID:     favorite.ID,
		UserID: favorite.UserID,
		CarID:  favorite.CarID,
	}
}
