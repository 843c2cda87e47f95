package domain

import "time"

type Status string

const (
	// StatusActive means the car is up for sale.
	StatusActive Status = "ACTIVE"
	// StatusSold means the listing completed.
	StatusSold Status = "SOLD"
	// StatusHidden keeps the listing out of public views.
	StatusHidden Status = "HIDDEN"
)

type Car struct {
	ID          int64
	UserID      int64
	Brand       string
	Model       string
	Year        int
	Mileage     float64
	Price       float64
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows listing searches. Nil bounds are unconstrained.
type Filter struct {
	Brand      string
	Model      string
	MinYear    *int
	MaxYear    *int
	MinPrice   *float64
	MaxPrice   *float64
	MinMileage *float64
	MaxMileage *float64
}

// Empty reports whether the filter constrains nothing, in which case list
// results are eligible for the shared "all cars" cache entry.
func (f Filter) Empty() bool {
	return f.Brand == "" && f.Model == "" &&
		f.MinYear == nil && f.MaxYear == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinMileage == nil && f.MaxMileage == nil
}
