package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewRowColumns = []string{
	"id", "service_request_id", "customer_id", "technician_id", "rating", "comment", "created_at", "updated_at",
}

func TestReviewRepository_CreateReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rv := &domain.Review{ServiceRequestID: 10, CustomerID: 1, TechnicianID: 2, Rating: 5, Comment: "Great"}

		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(int64(10), int64(1), int64(2), 5, "Great").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

		require.NoError(t, repo.CreateReview(ctx, rv))
		assert.Equal(t, int64(3), rv.ID)
		assert.Equal(t, now, rv.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second review for request", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.CreateReview(ctx, &domain.Review{ServiceRequestID: 10, Rating: 4, Comment: "x"})
		assert.ErrorIs(t, err, domain.ErrReviewExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown request", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.CreateReview(ctx, &domain.Review{ServiceRequestID: 99, Rating: 4, Comment: "x"})
		assert.ErrorIs(t, err, domain.ErrServiceRequestNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_GetReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM reviews WHERE id = \$1$`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(reviewRowColumns).AddRow(int64(3), int64(10), int64(1), int64(2), 4, "Good", now, now))

		rv, err := repo.GetReview(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, rv.Rating)
		assert.Equal(t, int64(2), rv.TechnicianID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("For update", func(t *testing.T) {
		mock.ExpectQuery(`FROM reviews WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(reviewRowColumns).AddRow(int64(3), int64(10), int64(1), int64(2), 4, "Good", now, now))

		_, err := repo.GetReviewForUpdate(ctx, 3)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM reviews WHERE id = \$1$`).
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows(reviewRowColumns))

		_, err := repo.GetReview(ctx, 4)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_UpdateAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	ctx := context.Background()
	now := time.Now()
	rv := &domain.Review{ID: 3, Rating: 2, Comment: "Took too long"}

	t.Run("Update", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE reviews SET rating`).
			WithArgs(int64(3), 2, "Took too long").
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateReview(ctx, rv))
		assert.Equal(t, now, rv.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update missing", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE reviews SET rating`).
			WithArgs(anyArgs(3)...).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

		assert.ErrorIs(t, repo.UpdateReview(ctx, rv), domain.ErrReviewNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete missing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM reviews`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteReview(ctx, 3), domain.ErrReviewNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_ListReviewsByTechnician(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM reviews WHERE technician_id = \$1 ORDER BY created_at DESC`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(reviewRowColumns).
			AddRow(int64(5), int64(11), int64(1), int64(2), 5, "Great", now, now).
			AddRow(int64(3), int64(10), int64(4), int64(2), 3, "Fine", now.Add(-time.Hour), now.Add(-time.Hour)))

	list, err := repo.ListReviewsByTechnician(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID)
	assert.Equal(t, "Fine", list[1].Comment)

	assert.NoError(t, mock.ExpectationsWereMet())
}
