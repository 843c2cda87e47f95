package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/image/service"
)

type ImageHandler struct {
	imageService *service.ImageService
	log          zerolog.Logger
}

func NewImageHandler(imageService *service.ImageService, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		log:          log.With().Str("component", "image_handler").Logger(),
	}
}

// Upload accepts a multipart "file" part plus a car_id form value, streams
// the blob to object storage and records the URL.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	carID, err := strconv.ParseInt(c.FormValue("car_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid car_id",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable file",
		})
	}
	defer file.Close()

	image, err := h.imageService.Upload(c.Context(), carID, fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrCarNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "car not found",
			})
		}

		h.log.Error().Err(err).Int64("car_id", carID).Msg("image upload failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error uploading image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        image.ID,
		"car_id":    image.CarID,
		"image_url": image.ImageURL,
	})
}

func (h *ImageHandler) GetByCarID(c *fiber.Ctx) error {
	carID, err := strconv.ParseInt(c.Params("carId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid car id",
		})
	}

	urls, err := h.imageService.GetURLsByCarID(c.Context(), carID)
	if err != nil {
		h.log.Error().Err(err).Int64("car_id", carID).Msg("failed to fetch images")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch images",
		})
	}

	return c.JSON(urls)
}

func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid image id",
		})
	}

	if err := h.imageService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "image not found",
			})
		}

		h.log.Error().Err(err).Int64("image_id", id).Msg("failed to delete image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ImageHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/images")
	api.Post("/upload", h.Upload)
	api.Get("/car/:carId", h.GetByCarID)
	api.Delete("/:id", h.Delete)
}
