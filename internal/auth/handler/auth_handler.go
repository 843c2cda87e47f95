package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/auth/dto"
	"github.com/agunich/AutoHub/internal/auth/service"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/pkg/constant"
)

var validate = validator.New()

// AuthHandler exposes registration and login. Token issuance errors inside
// the service surface here as HTTP statuses; the handler holds no auth state
// of its own.
type AuthHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

func NewAuthHandler(userService *service.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
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

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "a user with this email already exists",
			})
		}

		h.log.Error().Err(err).Msg("registration failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "an error occurred during registration",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	token, err := h.userService.Authenticate(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}

		h.log.Error().Err(err).Msg("login failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "an error occurred during login",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Token: constant.BearerPrefix + token,
	})
}
