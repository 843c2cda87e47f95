package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agunich/AutoHub/internal/car/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CarRepository struct {
	db DB
}

func NewCarRepository(db DB) *CarRepository {
	return &CarRepository{db: db}
}

const carColumns = `id, user_id, brand, model, year, mileage, price, description, status, created_at, updated_at`

// GetAll lists cars, optionally narrowed by filter predicates. Filters
// translate to SQL conditions so the store does the narrowing, not the
// application.
func (r *CarRepository) GetAll(ctx context.Context, filter domain.Filter) ([]domain.Car, error) {
	var (
		conditions []string
		args       []any
	)

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Brand != "" {
		addCondition("brand ILIKE $%d", filter.Brand)
	}

	if filter.Model != "" {
		addCondition("model ILIKE $%d", filter.Model)
	}

	if filter.MinYear != nil {
		addCondition("year >= $%d", *filter.MinYear)
	}

	if filter.MaxYear != nil {
		addCondition("year <= $%d", *filter.MaxYear)
	}

	if filter.MinPrice != nil {
		addCondition("price >= $%d", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		addCondition("price <= $%d", *filter.MaxPrice)
	}

	if filter.MinMileage != nil {
		addCondition("mileage >= $%d", *filter.MinMileage)
	}

	if filter.MaxMileage != nil {
		addCondition("mileage <= $%d", *filter.MaxMileage)
	}

	query := `SELECT ` + carColumns + ` FROM cars`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	query += ` ORDER BY id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []domain.Car

	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}

		cars = append(cars, *car)
	}

	return cars, rows.Err()
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 LIMIT 1;`

	car, err := scanCar(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get car by id: %w", err)
	}

	return car, nil
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (user_id, brand, model, year, mileage, price, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`

	err := r.db.QueryRow(ctx, query, car.UserID, car.Brand, car.Model, car.Year,
		car.Mileage, car.Price, car.Description, string(car.Status),
		car.CreatedAt, car.UpdatedAt).Scan(&car.ID)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}

	return nil
}

func scanCar(row pgx.Row) (*domain.Car, error) {
	var (
		car    domain.Car
		status string
	)

	err := row.Scan(&car.ID, &car.UserID, &car.Brand, &car.Model, &car.Year,
		&car.Mileage, &car.Price, &car.Description, &status,
		&car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		return nil, err
	}

	car.Status = domain.Status(status)

	return &car, nil
}
