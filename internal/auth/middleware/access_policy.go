package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Access int

const (
	Public Access = iota
	Authenticated
)

// Rule binds an HTTP method and a path pattern to a required access level.
// Patterns are either exact paths or a prefix followed by "/**".
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// AccessPolicy is a static ordered rule table. The first matching rule wins;
// requests that match no rule require authentication.
type AccessPolicy struct {
	rules []Rule
}

func NewAccessPolicy(rules []Rule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// DefaultPolicy is the canonical route policy: registration, login and all
// public-API reads are open, every other route needs an authenticated
// principal.
func DefaultPolicy() *AccessPolicy {
	return NewAccessPolicy([]Rule{
		{Method: fiber.MethodPost, Pattern: "/auth/register", Access: Public},
		{Method: fiber.MethodPost, Pattern: "/auth/login", Access: Public},
		{Method: fiber.MethodGet, Pattern: "/api/**", Access: Public},
	})
}

// Required resolves the access level for a method/path pair.
func (p *AccessPolicy) Required(method, path string) Access {
	for _, rule := range p.rules {
		if rule.Method == method && matchPattern(rule.Pattern, path) {
			return rule.Access
		}
	}

	return Authenticated
}

// Enforce rejects requests to protected routes that carry no authenticated
// principal. It runs after the JWT filter, so an absent principal means the
// request either sent no token or sent one that failed validation.
func (p *AccessPolicy) Enforce(c *fiber.Ctx) error {
	if p.Required(c.Method(), c.Path()) == Public {
		return c.Next()
	}

	if PrincipalEmail(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	return c.Next()
}

// matchPattern supports exact paths and "<prefix>/**" subtree patterns.
// "/api/**" matches "/api" and everything below it.
func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/**") {
		base := strings.TrimSuffix(pattern, "/**")
		return path == base || strings.HasPrefix(path, base+"/")
	}

	return path == pattern
}
