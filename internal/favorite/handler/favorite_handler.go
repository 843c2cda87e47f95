package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/favorite/dto"
	"github.com/agunich/AutoHub/internal/favorite/service"
)

var validate = validator.New()

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	log             zerolog.Logger
}

func NewFavoriteHandler(favoriteService *service.FavoriteService, log zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		log:             log.With().Str("component", "favorite_handler").Logger(),
	}
}

func (h *FavoriteHandler) GetAll(c *fiber.Ctx) error {
	favorites, err := h.favoriteService.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch favorites")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch favorites",
		})
	}

	return c.JSON(favorites)
}

func (h *FavoriteHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid favorite id",
		})
	}

	favorite, err := h.favoriteService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFavoriteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "favorite not found",
			})
		}

		h.log.Error().Err(err).Int64("favorite_id", id).Msg("failed to fetch favorite")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch favorite",
		})
	}

	return c.JSON(favorite)
}

func (h *FavoriteHandler) Create(c *fiber.Ctx) error {
	var input dto.FavoriteInput
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

	favorite, err := h.favoriteService.Create(c.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create favorite")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

func (h *FavoriteHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid favorite id",
		})
	}

	if err := h.favoriteService.Delete(c.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("favorite_id", id).Msg("failed to delete favorite")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete favorite",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FavoriteHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/favorites")
	api.Get("/", h.GetAll)
	api.Get("/:id", h.GetByID)
	api.Post("/", h.Create)
	api.Delete("/:id", h.Delete)
}
