// Package middleware holds the explicit request pipeline: CORS runs first,
// then the JWT filter shapes the request identity, then the access policy
// decides whether that identity is sufficient for the route.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/auth/domain"
	"github.com/agunich/AutoHub/internal/auth/service"
	"github.com/agunich/AutoHub/pkg/constant"
)

//go:generate mockgen -destination=../../mocks/mock_principal_loader.go -package=mocks github.com/agunich/AutoHub/internal/auth/middleware PrincipalLoader

// Request-scoped locals keys set by the filter when a valid token is present.
const (
	LocalPrincipal = "principal_email"
	LocalRole      = "principal_role"
)

// PrincipalLoader confirms that a token subject still maps to a live account.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, email string) (*domain.PrincipalView, error)
}

// JWTFilter is the per-request authentication filter. It only shapes the
// request-scoped identity; it never rejects a request itself. Malformed,
// expired or forged tokens degrade to "unauthenticated" and the access policy
// decides later whether that matters for the route.
type JWTFilter struct {
	tokens service.TokenCodec
	users  PrincipalLoader
	log    zerolog.Logger
}

func NewJWTFilter(tokens service.TokenCodec, users PrincipalLoader, log zerolog.Logger) *JWTFilter {
	return &JWTFilter{
		tokens: tokens,
		users:  users,
		log:    log.With().Str("component", "jwt_filter").Logger(),
	}
}

func (f *JWTFilter) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, constant.BearerPrefix) {
		return c.Next()
	}

	raw := strings.TrimPrefix(header, constant.BearerPrefix)

	claims, err := f.tokens.Decode(raw)
	if err != nil {
		f.log.Debug().Err(err).Msg("could not extract subject from token")
		return c.Next()
	}

	subject := claims.Subject
	if subject == "" || c.Locals(LocalPrincipal) != nil {
		return c.Next()
	}

	// Fail closed: any validation problem leaves the request unauthenticated.
	if !f.tokens.Validate(raw, subject) {
		f.log.Debug().Str("subject", subject).Msg("token failed validation")
		return c.Next()
	}

	principal, err := f.users.LoadPrincipal(c.Context(), subject)
	if err != nil {
		f.log.Debug().Err(err).Str("subject", subject).Msg("token subject no longer resolves")
		return c.Next()
	}

	c.Locals(LocalPrincipal, subject)
	c.Locals(LocalRole, string(principal.Role))

	return c.Next()
}

// PrincipalEmail returns the authenticated subject bound to the request, or
// "" when the request is unauthenticated.
func PrincipalEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalPrincipal).(string); ok {
		return v
	}

	return ""
}
