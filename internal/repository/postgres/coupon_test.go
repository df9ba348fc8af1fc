package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var couponRowColumns = []string{"code", "discount_value", "max_usage", "usage_count", "expiry_date", "created_at"}

func TestCouponRepository_CreateCoupon(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()
	now := time.Now()
	c := &domain.Coupon{Code: "SAVE20", DiscountValue: 0.2, MaxUsage: 5, ExpiryDate: now.Add(24 * time.Hour)}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO coupons`).
			WithArgs("SAVE20", 0.2, 5, 0, c.ExpiryDate).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

		require.NoError(t, repo.CreateCoupon(ctx, c))
		assert.Equal(t, now, c.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate code", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO coupons`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.CreateCoupon(ctx, c)
		assert.ErrorIs(t, err, domain.ErrCouponExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCouponRepository_GetCoupon(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM coupons WHERE code = \$1$`).
			WithArgs("SAVE20").
			WillReturnRows(pgxmock.NewRows(couponRowColumns).AddRow("SAVE20", 0.2, 5, 1, now, now))

		c, err := repo.GetCoupon(ctx, "SAVE20")
		require.NoError(t, err)
		assert.Equal(t, 1, c.UsageCount)
		assert.Equal(t, 5, c.MaxUsage)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("For update", func(t *testing.T) {
		mock.ExpectQuery(`FROM coupons WHERE code = \$1 FOR UPDATE`).
			WithArgs("SAVE20").
			WillReturnRows(pgxmock.NewRows(couponRowColumns).AddRow("SAVE20", 0.2, 5, 1, now, now))

		_, err := repo.GetCouponForUpdate(ctx, "SAVE20")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM coupons`).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)

		c, err := repo.GetCoupon(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrCouponNotFound)
		assert.Nil(t, c)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCouponRepository_UpdateAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()
	now := time.Now()
	c := &domain.Coupon{Code: "SAVE20", DiscountValue: 0.2, MaxUsage: 5, UsageCount: 2, ExpiryDate: now}

	t.Run("Update", func(t *testing.T) {
		mock.ExpectExec(`UPDATE coupons`).
			WithArgs("SAVE20", 0.2, 5, 2, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateCoupon(ctx, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update violates usage constraint", func(t *testing.T) {
		mock.ExpectExec(`UPDATE coupons`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

		assert.ErrorIs(t, repo.UpdateCoupon(ctx, c), domain.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update missing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE coupons`).
			WithArgs(anyArgs(5)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateCoupon(ctx, c), domain.ErrCouponNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM coupons`).
			WithArgs("SAVE20").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteCoupon(ctx, "SAVE20"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(`FROM coupons ORDER BY`).
			WillReturnRows(pgxmock.NewRows(couponRowColumns).
				AddRow("A", 0.1, 1, 0, now, now).
				AddRow("B", 0.5, 2, 2, now, now))

		coupons, err := repo.ListCoupons(ctx)
		require.NoError(t, err)
		require.Len(t, coupons, 2)
		assert.Equal(t, "B", coupons[1].Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
