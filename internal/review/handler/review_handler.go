package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/review/dto"
	"github.com/agunich/AutoHub/internal/review/service"
)

var validate = validator.New()

type ReviewHandler struct {
	reviewService *service.ReviewService
	log           zerolog.Logger
}

func NewReviewHandler(reviewService *service.ReviewService, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		log:           log.With().Str("component", "review_handler").Logger(),
	}
}

func (h *ReviewHandler) GetAll(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch reviews")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch reviews",
		})
	}

	return c.JSON(reviews)
}

func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid review id",
		})
	}

	review, err := h.reviewService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "review not found",
			})
		}

		h.log.Error().Err(err).Int64("review_id", id).Msg("failed to fetch review")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch review",
		})
	}

	return c.JSON(review)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var input dto.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	review, err := h.reviewService.Create(c.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create review")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid review id",
		})
	}

	if err := h.reviewService.Delete(c.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete review",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReviewHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/reviews")
	api.Get("/", h.GetAll)
	api.Get("/:id", h.GetByID)
	api.Post("/", h.Create)
	api.Delete("/:id", h.Delete)
}
