package dto

import "time"

type CarInput struct {
	UserID      int64   `json:"user_id" validate:"required"`
	Brand       string  `json:"brand" validate:"required,min=1,max=50"`
	Model       string  `json:"model" validate:"required,min=1,max=50"`
	Year        int     `json:"year" validate:"required,min=1900"`
	Mileage     float64 `json:"mileage" validate:"min=0"`
	Price       float64 `json:"price" validate:"min=0"`
	Description string  `json:"description" validate:"max=500"`
}

type CarOutput struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Mileage     float64   `json:"mileage"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
