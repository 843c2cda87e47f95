package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/review/domain"
	"github.com/agunich/AutoHub/internal/review/dto"
)

type ReviewService struct {
	repo domain.ReviewRepository
	log  zerolog.Logger
}

func NewReviewService(repo domain.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		repo: repo,
		log:  log.With().Str("component", "review_service").Logger(),
	}
}

func (s *ReviewService) GetAll(ctx context.Context) ([]dto.ReviewOutput, error) {
	reviews, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewOutput, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewOutput(&reviews[i]))
	}

	return out, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id int64) (*dto.ReviewOutput, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review == nil {
		return nil, apperrors.ErrReviewNotFound
	}

	out := toReviewOutput(review)

	return &out, nil
}

func (s *ReviewService) Create(ctx context.Context, input dto.ReviewInput) (*dto.ReviewOutput, error) {
	review := &domain.Review{
		UserID:    input.UserID,
		CarID:     input.CarID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info().Int64("review_id", review.ID).Int64("car_id", review.CarID).Msg("review created")

	out := toReviewOutput(review)

	return &out, nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func toReviewOutput(review *domain.Review) dto.ReviewOutput {
	return dto.ReviewOutput{
		ID:        review.ID,
		UserID:    review.UserID,
		CarID:     review.CarID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
