package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agunich/AutoHub/internal/mocks"
	"github.com/agunich/AutoHub/internal/review/domain"
	"github.com/agunich/AutoHub/internal/review/dto"
	"github.com/agunich/AutoHub/internal/review/handler"
	"github.com/agunich/AutoHub/internal/review/service"
)

func newReviewApp(t *testing.T) (*fiber.App, *mocks.MockReviewRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockReviewRepository(ctrl)
	reviewService := service.NewReviewService(mockRepo, zerolog.Nop())

	app := fiber.New()
	handler.NewReviewHandler(reviewService, zerolog.Nop()).RegisterRoutes(app)

	return app, mockRepo
}

func postReview(t *testing.T, app *fiber.App, input dto.ReviewInput) *http.Response {
	t.Helper()

	body, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestReviewHandler_Create_Success(t *testing.T) {
	app, mockRepo := newReviewApp(t)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *domain.Review) error {
			review.ID = 1
			return nil
		})

	resp := postReview(t, app, dto.ReviewInput{
		UserID:  2,
		CarID:   3,
		Rating:  5,
		Comment: "great car",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ReviewOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 5, out.Rating)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		rating int
	}{
		{"rating too low", 0},
		{"rating too high", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newReviewApp(t)

			resp := postReview(t, app, dto.ReviewInput{
				UserID:  2,
				CarID:   3,
				Rating:  tt.rating,
				Comment: "out of range",
			})

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestReviewHandler_GetByID_NotFound(t *testing.T) {
	app, mockRepo := newReviewApp(t)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/99", nil)

	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviewHandler_Delete(t *testing.T) {
	app, mockRepo := newReviewApp(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/4", nil)

	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
