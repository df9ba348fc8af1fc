package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceRequestColumns = []string{
	"id", "customer_id", "technician_id", "item_name", "item_condition", "issue_description",
	"requested_service_date", "status", "coupon_code", "coupon_discount",
	"payment_method_id", "final_cost", "created_at", "updated_at",
	"e_id", "e_technician_id", "e_cost", "e_completion_date", "e_notes", "e_created_at",
	"r_id", "r_technician_id", "r_repair_details", "r_resolution_summary", "r_completion_date", "r_created_at",
}

func ptr[T any](v T) *T {
	return &v
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// pendingRow - строка заявки без оценки, отчета и купона
func pendingRow(id, customerID int64, now time.Time) []any {
	return []any{
		id, customerID, nil, "Laptop", "used", "Screen flickers constantly",
		now.Add(48 * time.Hour), domain.StatusPending, nil, nil,
		int64(1), nil, now, now,
		nil, nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil, nil,
	}
}

func TestServiceRequestRepository_CreateServiceRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success with coupon", func(t *testing.T) {
		sr := &domain.ServiceRequest{
			CustomerID:           7,
			Item:                 domain.Item{Name: "Laptop", Condition: "used", IssueDescription: "Screen flickers constantly"},
			RequestedServiceDate: now.Add(48 * time.Hour),
			Status:               domain.StatusPending,
			Coupon:               &domain.CouponSnapshot{Code: "SAVE20", DiscountValue: 0.2},
			PaymentMethodID:      1,
		}

		mock.ExpectQuery(`INSERT INTO service_requests`).
			WithArgs(int64(7), (*int64)(nil), "Laptop", "used", "Screen flickers constantly",
				sr.RequestedServiceDate, domain.StatusPending, ptr("SAVE20"), ptr(0.2), int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

		err := repo.CreateServiceRequest(ctx, sr)
		require.NoError(t, err)
		assert.Equal(t, int64(10), sr.ID)
		require.NotNil(t, sr.CouponCode)
		assert.Equal(t, "SAVE20", *sr.CouponCode)
		assert.Equal(t, now, sr.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown payment method", func(t *testing.T) {
		sr := &domain.ServiceRequest{CustomerID: 7, Status: domain.StatusPending, PaymentMethodID: 99}

		mock.ExpectQuery(`INSERT INTO service_requests`).
			WithArgs(anyArgs(10)...).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.CreateServiceRequest(ctx, sr)
		assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_GetServiceRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Without estimate and report", func(t *testing.T) {
		mock.ExpectQuery(`FROM service_requests sr LEFT JOIN estimates e .* WHERE sr\.id = \$1$`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns).AddRow(pendingRow(1, 7, now)...))

		sr, err := repo.GetServiceRequest(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sr.ID)
		assert.Equal(t, int64(7), sr.CustomerID)
		assert.Equal(t, domain.StatusPending, sr.Status)
		assert.Nil(t, sr.TechnicianID)
		assert.Nil(t, sr.Coupon)
		assert.Nil(t, sr.Estimate)
		assert.Nil(t, sr.Report)
		assert.Nil(t, sr.FinalCost)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Completed with coupon, estimate and report", func(t *testing.T) {
		row := []any{
			int64(2), int64(7), ptr(int64(3)), "Phone", "broken", "Does not charge at all",
			now, domain.StatusCompleted, ptr("SAVE20"), ptr(0.2),
			int64(1), ptr(int64(80000)), now, now,
			ptr(int64(5)), ptr(int64(3)), ptr(int64(100000)), ptr(now), ptr("replace port"), ptr(now),
			ptr(int64(8)), ptr(int64(3)), ptr("Replaced the charging port and cleaned"), ptr("fixed"), ptr(now), ptr(now),
		}

		mock.ExpectQuery(`FROM service_requests sr`).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns).AddRow(row...))

		sr, err := repo.GetServiceRequest(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, sr.TechnicianID)
		assert.Equal(t, int64(3), *sr.TechnicianID)
		require.NotNil(t, sr.Coupon)
		assert.Equal(t, "SAVE20", sr.Coupon.Code)
		assert.InDelta(t, 0.2, sr.Coupon.DiscountValue, 1e-9)
		require.NotNil(t, sr.Estimate)
		assert.Equal(t, int64(100000), sr.Estimate.Cost)
		assert.Equal(t, int64(2), sr.Estimate.ServiceRequestID)
		require.NotNil(t, sr.Report)
		assert.Equal(t, "fixed", sr.Report.ResolutionSummary)
		require.NotNil(t, sr.FinalCost)
		assert.Equal(t, int64(80000), *sr.FinalCost)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM service_requests sr`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		sr, err := repo.GetServiceRequest(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrServiceRequestNotFound)
		assert.Nil(t, sr)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("For update locks the request row", func(t *testing.T) {
		mock.ExpectQuery(`WHERE sr\.id = \$1 FOR UPDATE OF sr`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns).AddRow(pendingRow(1, 7, now)...))

		sr, err := repo.GetServiceRequestForUpdate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sr.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_UpdateServiceRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	sr := &domain.ServiceRequest{
		ID:                   1,
		TechnicianID:         ptr(int64(3)),
		Item:                 domain.Item{Name: "Laptop", Condition: "used", IssueDescription: "Screen flickers constantly"},
		RequestedServiceDate: now,
		Status:               domain.StatusAccepted,
		PaymentMethodID:      1,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE service_requests`).
			WithArgs(int64(1), ptr(int64(3)), "Laptop", "used", "Screen flickers constantly",
				now, domain.StatusAccepted, int64(1), (*int64)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateServiceRequest(ctx, sr))
		assert.Equal(t, now, sr.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE service_requests`).
			WithArgs(anyArgs(9)...).
			WillReturnError(pgx.ErrNoRows)

		err := repo.UpdateServiceRequest(ctx, sr)
		assert.ErrorIs(t, err, domain.ErrServiceRequestNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_DeleteServiceRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM service_requests`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteServiceRequest(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM service_requests`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteServiceRequest(ctx, 2), domain.ErrServiceRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_Lists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("By customer", func(t *testing.T) {
		mock.ExpectQuery(`WHERE sr\.customer_id = \$1 ORDER BY sr\.created_at DESC`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns).
				AddRow(pendingRow(2, 7, now)...).
				AddRow(pendingRow(1, 7, now.Add(-time.Hour))...))

		requests, err := repo.ListByCustomer(ctx, 7)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, int64(2), requests[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("For technician with status filter", func(t *testing.T) {
		mock.ExpectQuery(`sr\.status = 'PENDING' OR sr\.technician_id = \$1`).
			WithArgs(int64(3), "PENDING").
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns).AddRow(pendingRow(1, 7, now)...))

		requests, err := repo.ListForTechnician(ctx, 3, domain.StatusPending)
		require.NoError(t, err)
		assert.Len(t, requests, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty list is not nil", func(t *testing.T) {
		mock.ExpectQuery(`WHERE sr\.customer_id`).
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows(serviceRequestColumns))

		requests, err := repo.ListByCustomer(ctx, 8)
		require.NoError(t, err)
		assert.NotNil(t, requests)
		assert.Empty(t, requests)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(`WHERE sr\.customer_id`).
			WithArgs(int64(9)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.ListByCustomer(ctx, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list service requests")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_CreateEstimate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	e := &domain.Estimate{ServiceRequestID: 1, TechnicianID: 3, Cost: 200000, CompletionDate: now.Add(120 * time.Hour), Notes: "parts"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO estimates`).
			WithArgs(int64(1), int64(3), int64(200000), e.CompletionDate, "parts").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

		require.NoError(t, repo.CreateEstimate(ctx, e))
		assert.Equal(t, int64(5), e.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second estimate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO estimates`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.CreateEstimate(ctx, &domain.Estimate{ServiceRequestID: 1, TechnicianID: 3, Cost: 1})
		assert.ErrorIs(t, err, domain.ErrEstimateExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceRequestRepository_Reports(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewServiceRequestRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Create", func(t *testing.T) {
		rep := &domain.Report{ServiceRequestID: 2, TechnicianID: 3, RepairDetails: "Replaced the charging port", ResolutionSummary: "fixed", CompletionDate: now}

		mock.ExpectQuery(`INSERT INTO reports`).
			WithArgs(int64(2), int64(3), "Replaced the charging port", "fixed", now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now))

		require.NoError(t, repo.CreateReport(ctx, rep))
		assert.Equal(t, int64(8), rep.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO reports`).
			WithArgs(anyArgs(5)...).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.CreateReport(ctx, &domain.Report{ServiceRequestID: 2})
		assert.ErrorIs(t, err, domain.ErrReportExists)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List by technician", func(t *testing.T) {
		mock.ExpectQuery(`FROM reports WHERE technician_id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "service_request_id", "technician_id", "repair_details", "resolution_summary", "completion_date", "created_at"}).
				AddRow(int64(8), int64(2), int64(3), "Replaced the charging port", "fixed", now, now))

		reports, err := repo.ListReportsByTechnician(ctx, 3)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, int64(2), reports[0].ServiceRequestID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
