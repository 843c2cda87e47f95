package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/agunich/AutoHub/internal/auth/service TokenCodec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/agunich/AutoHub/internal/errors"
)

// TokenCodec produces and consumes signed, expiring identity tokens.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Decode(tokenString string) (*IdentityClaims, error)
	IsExpired(claims *IdentityClaims) bool
	Validate(tokenString, expectedSubject string) bool
}

// IdentityClaims carries only the registered claim set: subject, issued-at
// and expires-at. Identity is the subject (the principal's email).
type IdentityClaims struct {
	jwt.RegisteredClaims
}

// TokenService is the stateless HMAC-SHA256 token codec. The secret and TTL
// are fixed at construction; concurrent use is safe because nothing mutates
// after that.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for the given subject with expiry = issued-at + TTL.
func (ts *TokenService) Issue(subject string) (string, error) {
	now := ts.now()

	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Decode verifies the signature and structure of a token and returns its
// claims. Expiry is deliberately NOT checked here; that is IsExpired's job, so
// a caller can still inspect the subject of an expired-but-authentic token.
func (ts *TokenService) Decode(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return ts.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// IsExpired reports whether the claims' expiry has passed. A token is expired
// at exactly its expiry instant; there is no grace period.
func (ts *TokenService) IsExpired(claims *IdentityClaims) bool {
	if claims.ExpiresAt == nil {
		return true
	}

	return !ts.now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether the token is authentic, carries the expected
// subject and is not expired. The subject comparison stops one principal's
// token from authenticating another even when both tokens are well-formed.
func (ts *TokenService) Validate(tokenString, expectedSubject string) bool {
	claims, err := ts.Decode(tokenString)
	if err != nil {
		return false
	}

	return claims.Subject == expectedSubject && !ts.IsExpired(claims)
}
