package dto

type FavoriteInput struct {
	UserID int64 `json:"user_id" validate:"required"`
	CarID  int64 `json:"car_id" validate:"required"`
}

type FavoriteOutput struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	CarID  int64 `json:"car_id"`
}
