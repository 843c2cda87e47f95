package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/agunich/AutoHub/internal/auth/domain UserRepository

// UserRepository persists user records. GetByEmail returns (nil, nil) when no
// user with the given email exists; uniqueness of the email column is enforced
// by the store itself, not by callers scanning all rows.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}
