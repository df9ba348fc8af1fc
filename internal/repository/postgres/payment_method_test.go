package postgres

import (
	"context"
	"testing"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepository(mock)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, provider FROM payment_methods ORDER BY id`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "provider"}).
				AddRow(int64(1), "Wallet", "repairhub").
				AddRow(int64(2), "Card", "visa"))

		methods, err := repo.ListPaymentMethods(ctx)
		require.NoError(t, err)
		require.Len(t, methods, 2)
		assert.Equal(t, "Card", methods[1].Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM payment_methods WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetPaymentMethod(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create", func(t *testing.T) {
		p := &domain.PaymentMethod{Name: "Card", Provider: "visa"}
		mock.ExpectQuery(`INSERT INTO payment_methods`).
			WithArgs("Card", "visa").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

		require.NoError(t, repo.CreatePaymentMethod(ctx, p))
		assert.Equal(t, int64(3), p.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update missing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payment_methods`).
			WithArgs(int64(9), "Card", "visa").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdatePaymentMethod(ctx, &domain.PaymentMethod{ID: 9, Name: "Card", Provider: "visa"})
		assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete referenced", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM payment_methods`).
			WithArgs(int64(1)).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.DeletePaymentMethod(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
