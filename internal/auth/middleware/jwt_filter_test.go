package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agunich/AutoHub/internal/auth/domain"
	"github.com/agunich/AutoHub/internal/auth/middleware"
	"github.com/agunich/AutoHub/internal/auth/service"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/mocks"
)

// newFilterApp wires the filter in front of a probe handler that reports the
// request-scoped identity, mirroring how main wires it in front of routes.
func newFilterApp(filter *middleware.JWTFilter) *fiber.App {
	app := fiber.New()
	app.Use(filter.Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"principal": middleware.PrincipalEmail(c),
			"role":      c.Locals(middleware.LocalRole),
		})
	})

	return app
}

func claimsFor(subject string) *service.IdentityClaims {
	return &service.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func TestJWTFilter_NoHeaderPassesThroughUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	app := newFilterApp(middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTFilter_NonBearerHeaderIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	app := newFilterApp(middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTFilter_MalformedTokenNeverErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	mockTokens.EXPECT().Decode("not-a-jwt").Return(nil, apperrors.ErrInvalidToken)

	app := newFilterApp(middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")

	resp, err := app.Test(req)

	// The filter degrades to "unauthenticated" instead of failing the request.
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTFilter_ValidTokenBindsPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	mockTokens.EXPECT().Decode("good-token").Return(claimsFor("test@example.com"), nil)
	mockTokens.EXPECT().Validate("good-token", "test@example.com").Return(true)
	mockUsers.EXPECT().LoadPrincipal(gomock.Any(), "test@example.com").Return(&domain.PrincipalView{
		Email: "test@example.com",
		Role:  domain.RoleUser,
	}, nil)

	filter := middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop())

	app := fiber.New()
	app.Use(filter.Handle)

	var gotPrincipal, gotRole string

	app.Get("/probe", func(c *fiber.Ctx) error {
		gotPrincipal = middleware.PrincipalEmail(c)
		gotRole, _ = c.Locals(middleware.LocalRole).(string)

		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test@example.com", gotPrincipal)
	assert.Equal(t, "USER", gotRole)
}

func TestJWTFilter_FailedValidationLeavesRequestUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	mockTokens.EXPECT().Decode("expired-token").Return(claimsFor("test@example.com"), nil)
	mockTokens.EXPECT().Validate("expired-token", "test@example.com").Return(false)

	filter := middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop())

	app := fiber.New()
	app.Use(filter.Handle)

	var gotPrincipal string

	app.Get("/probe", func(c *fiber.Ctx) error {
		gotPrincipal = middleware.PrincipalEmail(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer expired-token")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, gotPrincipal)
}

func TestJWTFilter_DeletedAccountLeavesRequestUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenCodec(ctrl)
	mockUsers := mocks.NewMockPrincipalLoader(ctrl)

	mockTokens.EXPECT().Decode("orphan-token").Return(claimsFor("gone@example.com"), nil)
	mockTokens.EXPECT().Validate("orphan-token", "gone@example.com").Return(true)
	mockUsers.EXPECT().LoadPrincipal(gomock.Any(), "gone@example.com").
		Return(nil, errors.New("user not found"))

	filter := middleware.NewJWTFilter(mockTokens, mockUsers, zerolog.Nop())

	app := fiber.New()
	app.Use(filter.Handle)

	var gotPrincipal string

	app.Get("/probe", func(c *fiber.Ctx) error {
		gotPrincipal = middleware.PrincipalEmail(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer orphan-token")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, gotPrincipal)
}
