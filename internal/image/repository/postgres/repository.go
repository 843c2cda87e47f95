package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agunich/AutoHub/internal/image/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ImageRepository struct {
	db DB
}

func NewImageRepository(db DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) GetByCarID(ctx context.Context, carID int64) ([]domain.Image, error) {
	rows, err := r.db.Query(ctx, `SELECT id, car_id, image_url FROM images WHERE car_id = $1 ORDER BY id;`, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []domain.Image

	for rows.Next() {
		var image domain.Image

		if err := rows.Scan(&image.ID, &image.CarID, &image.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}

		images = append(images, image)
	}

	return images, rows.Err()
}

func (r *ImageRepository) Create(ctx context.Context, image *domain.Image) error {
	err := r.db.QueryRow(ctx, `INSERT INTO images (car_id, image_url) VALUES ($1, $2) RETURNING id;`,
		image.CarID, image.ImageURL).Scan(&image.ID)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *ImageRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM images WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check image existence: %w", err)
	}

	return exists, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
