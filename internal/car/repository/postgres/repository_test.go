package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agunich/AutoHub/internal/car/domain"
	repo "github.com/agunich/AutoHub/internal/car/repository/postgres"
)

var carColumns = []string{
	"id", "user_id", "brand", "model", "year", "mileage", "price",
	"description", "status", "created_at", "updated_at",
}

func carRow(rows *pgxmock.Rows, id int64, brand string) *pgxmock.Rows {
	now := time.Now()

	return rows.AddRow(id, int64(1), brand, "Corolla", 2020, 42000.0, 15000.0,
		"well maintained", "ACTIVE", now, now)
}

func TestCarRepository_GetAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCarRepository(mock)
	ctx := context.Background()

	t.Run("no filter lists everything", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, brand").
			WillReturnRows(carRow(carRow(pgxmock.NewRows(carColumns), 1, "Toyota"), 2, "Honda"))

		cars, err := r.GetAll(ctx, domain.Filter{})
		require.NoError(t, err)
		require.Len(t, cars, 2)
		assert.Equal(t, "Toyota", cars[0].Brand)
		assert.Equal(t, domain.StatusActive, cars[0].Status)
	})

	t.Run("filter predicates become query args", func(t *testing.T) {
		minYear := 2018
		maxPrice := 20000.0

		mock.ExpectQuery("WHERE brand ILIKE \\$1 AND year >= \\$2 AND price <= \\$3").
			WithArgs("Toyota", 2018, 20000.0).
			WillReturnRows(carRow(pgxmock.NewRows(carColumns), 1, "Toyota"))

		cars, err := r.GetAll(ctx, domain.Filter{
			Brand:    "Toyota",
			MinYear:  &minYear,
			MaxPrice: &maxPrice,
		})
		require.NoError(t, err)
		assert.Len(t, cars, 1)
	})
}

func TestCarRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCarRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, brand").
			WithArgs(int64(1)).
			WillReturnRows(carRow(pgxmock.NewRows(carColumns), 1, "Toyota"))

		car, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Toyota", car.Brand)
	})

	t.Run("not found returns nil car and nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, brand").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		car, err := r.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, car)
	})
}

func TestCarRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCarRepository(mock)
	now := time.Now()

	car := &domain.Car{
		UserID:      1,
		Brand:       "Honda",
		Model:       "Civic",
		Year:        2021,
		Mileage:     10000,
		Price:       18000,
		Description: "like new",
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(car.UserID, car.Brand, car.Model, car.Year, car.Mileage,
			car.Price, car.Description, "ACTIVE", now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	err = r.Create(context.Background(), car)
	require.NoError(t, err)
	assert.Equal(t, int64(5), car.ID)
}

func TestCarRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCarRepository(mock)

	mock.ExpectExec("DELETE FROM cars").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = r.Delete(context.Background(), 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
