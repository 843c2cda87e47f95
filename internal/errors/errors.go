package errors

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers both "unknown email" and "wrong password"
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrCarNotFound        = errors.New("car not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrImageNotFound      = errors.New("image not found")
)
