package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalView is the identity slice the security layer works with.
// It is deliberately concrete: no generic user-details object, polymorphic
// only over Role.
type PrincipalView struct {
	Email        string
	PasswordHash string
	Role         Role
}

func (u *User) Principal() *PrincipalView {
	return &PrincipalView{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}
