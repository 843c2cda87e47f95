package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/car/domain"
	"github.com/agunich/AutoHub/internal/car/dto"
	"github.com/agunich/AutoHub/internal/car/service"
	apperrors "github.com/agunich/AutoHub/internal/errors"
)

var validate = validator.New()

type CarHandler struct {
	carService *service.CarService
	log        zerolog.Logger
}

func NewCarHandler(carService *service.CarService, log zerolog.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		log:        log.With().Str("component", "car_handler").Logger(),
	}
}

// GetAll lists cars. Search filters come in as query parameters; an empty
// query returns the full (cached) listing.
func (h *CarHandler) GetAll(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cars, err := h.carService.GetAll(c.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch cars")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch cars",
		})
	}

	return c.JSON(cars)
}

func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid car id",
		})
	}

	car, err := h.carService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCarNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "car not found",
			})
		}

		h.log.Error().Err(err).Int64("car_id", id).Msg("failed to fetch car")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch car",
		})
	}

	return c.JSON(car)
}

func (h *CarHandler) Create(c *fiber.Ctx) error {
	var input dto.CarInput
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

	car, err := h.carService.Create(c.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create car")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create car",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(car)
}

func (h *CarHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid car id",
		})
	}

	if err := h.carService.Delete(c.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("car_id", id).Msg("failed to delete car")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete car",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CarHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/cars")
	api.Get("/", h.GetAll)
	api.Get("/:id", h.GetByID)
	api.Post("/", h.Create)
	api.Delete("/:id", h.Delete)
}

func parseFilter(c *fiber.Ctx) (domain.Filter, error) {
	filter := domain.Filter{
		Brand: c.Query("brand"),
		Model: c.Query("model"),
	}

	intParam := func(name string) (*int, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid " + name)
		}

		return &v, nil
	}

	floatParam := func(name string) (*float64, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid " + name)
		}

		return &v, nil
	}

	var err error

	if filter.MinYear, err = intParam("min_year"); err != nil {
		return filter, err
	}

	if filter.MaxYear, err = intParam("max_year"); err != nil {
		return filter, err
	}

	if filter.MinPrice, err = floatParam("min_price"); err != nil {
		return filter, err
	}

	if filter.MaxPrice, err = floatParam("max_price"); err != nil {
		return filter, err
	}

	if filter.MinMileage, err = floatParam("min_mileage"); err != nil {
		return filter, err
	}

	if filter.MaxMileage, err = floatParam("max_mileage"); err != nil {
		return filter, err
	}

	return filter, nil
}
