package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agunich/AutoHub/internal/favorite/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type FavoriteRepository struct {
	db DB
}

func NewFavoriteRepository(db DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) GetAll(ctx context.Context) ([]domain.Favorite, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, car_id FROM favorites ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite

	for rows.Next() {
		var favorite domain.Favorite

		if err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.CarID); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		favorites = append(favorites, favorite)
	}

	return favorites, rows.Err()
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	var favorite domain.Favorite

	err := r.db.QueryRow(ctx, `SELECT id, user_id, car_id FROM favorites WHERE id = $1 LIMIT 1;`, id).
		Scan(&favorite.ID, &favorite.UserID, &favorite.CarID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get favorite by id: %w", err)
	}

	return &favorite, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	err := r.db.QueryRow(ctx, `INSERT INTO favorites (user_id, car_id) VALUES ($1, $2) RETURNING id;`,
		favorite.UserID, favorite.CarID).Scan(&favorite.ID)
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
