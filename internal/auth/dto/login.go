package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued bearer credential. The value already
// includes the "Bearer " prefix, ready for the Authorization header.
type TokenResponse struct {
	Token string `json:"token"`
}
