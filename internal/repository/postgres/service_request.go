package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Заявка читается вместе с оценкой и отчетом одним запросом
const serviceRequestSelect = `SELECT sr.id, sr.customer_id, sr.technician_id,
		sr.item_name, sr.item_condition, sr.issue_description,
		sr.requested_service_date, sr.status, sr.coupon_code, sr.coupon_discount,
		sr.payment_method_id, sr.final_cost, sr.created_at, sr.updated_at,
		e.id, e.technician_id, e.cost, e.completion_date, e.notes, e.created_at,
		r.id, r.technician_id, r.repair_details, r.resolution_summary, r.completion_date, r.created_at
	 FROM service_requests sr
	 LEFT JOIN estimates e ON e.service_request_id = sr.id
	 LEFT JOIN reports r ON r.service_request_id = sr.id`

// ServiceRequestRepository реализует domain.ServiceRequestRepository
type ServiceRequestRepository struct {
	db DBTX
}

// NewServiceRequestRepository создает новый ServiceRequestRepository
func NewServiceRequestRepository(db DBTX) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

// CreateServiceRequest сохраняет новую заявку и заполняет ID и даты
func (r *ServiceRequestRepository) CreateServiceRequest(ctx context.Context, sr *domain.ServiceRequest) error {
	var couponCode *string
	var couponDiscount *float64
	if sr.Coupon != nil {
		couponCode = &sr.Coupon.Code
		couponDiscount = &sr.Coupon.DiscountValue
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO service_requests (customer_id, technician_id, item_name, item_condition, issue_description,
			requested_service_date, status, coupon_code, coupon_discount, payment_method_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		sr.CustomerID, sr.TechnicianID, sr.Item.Name, sr.Item.Condition, sr.Item.IssueDescription,
		sr.RequestedServiceDate, sr.Status, couponCode, couponDiscount, sr.PaymentMethodID,
	).Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)

	if err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return domain.ErrPaymentMethodNotFound
		}
		return fmt.Errorf("repository: failed to create service request for customer %d: %w", sr.CustomerID, err)
	}

	sr.CouponCode = couponCode
	return nil
}

// GetServiceRequest получает заявку с оценкой и отчетом
func (r *ServiceRequestRepository) GetServiceRequest(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	return r.get(ctx, serviceRequestSelect+` WHERE sr.id = $1`, id)
}

// GetServiceRequestForUpdate получает заявку и блокирует ее строку до конца транзакции
func (r *ServiceRequestRepository) GetServiceRequestForUpdate(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	return r.get(ctx, serviceRequestSelect+` WHERE sr.id = $1 FOR UPDATE OF sr`, id)
}

func (r *ServiceRequestRepository) get(ctx context.Context, query string, id int64) (*domain.ServiceRequest, error) {
	sr, err := scanServiceRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrServiceRequestNotFound
		}
		return nil, fmt.Errorf("repository: failed to get service request %d: %w", id, err)
	}
	return sr, nil
}

// UpdateServiceRequest сохраняет изменяемые поля заявки.
// Купон привязывается только при создании и здесь не меняется.
func (r *ServiceRequestRepository) UpdateServiceRequest(ctx context.Context, sr *domain.ServiceRequest) error {
	err := r.db.QueryRow(ctx,
		`UPDATE service_requests
		 SET technician_id = $2, item_name = $3, item_condition = $4, issue_description = $5,
			requested_service_date = $6, status = $7, payment_method_id = $8, final_cost = $9, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		sr.ID, sr.TechnicianID, sr.Item.Name, sr.Item.Condition, sr.Item.IssueDescription,
		sr.RequestedServiceDate, sr.Status, sr.PaymentMethodID, sr.FinalCost,
	).Scan(&sr.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrServiceRequestNotFound
		}
		if hasCode(err, pgForeignKeyViolation) {
			return domain.ErrPaymentMethodNotFound
		}
		return fmt.Errorf("repository: failed to update service request %d: %w", sr.ID, err)
	}

	return nil
}

// DeleteServiceRequest удаляет заявку. Оценка и отчет удаляются каскадно.
func (r *ServiceRequestRepository) DeleteServiceRequest(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete service request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrServiceRequestNotFound
	}
	return nil
}

// ListByCustomer возвращает заявки клиента, новые первыми
func (r *ServiceRequestRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.ServiceRequest, error) {
	return r.list(ctx,
		serviceRequestSelect+` WHERE sr.customer_id = $1 ORDER BY sr.created_at DESC, sr.id DESC`,
		customerID,
	)
}

// ListForTechnician возвращает заявки, открытые для оценки, и заявки техника.
// Пустой status означает все статусы.
func (r *ServiceRequestRepository) ListForTechnician(ctx context.Context, technicianID int64, status domain.ServiceRequestStatus) ([]*domain.ServiceRequest, error) {
	return r.list(ctx,
		serviceRequestSelect+`
		 WHERE (sr.status = 'PENDING' OR sr.technician_id = $1 OR e.technician_id = $1)
		   AND ($2 = '' OR sr.status = $2)
		 ORDER BY sr.created_at DESC, sr.id DESC`,
		technicianID, string(status),
	)
}

func (r *ServiceRequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ServiceRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list service requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.ServiceRequest, 0)
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan service request: %w", err)
		}
		requests = append(requests, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating service requests: %w", err)
	}

	return requests, nil
}

// CreateEstimate сохраняет оценку. У заявки может быть только одна оценка.
func (r *ServiceRequestRepository) CreateEstimate(ctx context.Context, e *domain.Estimate) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO estimates (service_request_id, technician_id, cost, completion_date, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		e.ServiceRequestID, e.TechnicianID, e.Cost, e.CompletionDate, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return domain.ErrEstimateExists
		}
		if hasCode(err, pgForeignKeyViolation) {
			return domain.ErrServiceRequestNotFound
		}
		return fmt.Errorf("repository: failed to create estimate for request %d: %w", e.ServiceRequestID, err)
	}

	return nil
}

// CreateReport сохраняет отчет. Повторный отчет по заявке отклоняется.
func (r *ServiceRequestRepository) CreateReport(ctx context.Context, rep *domain.Report) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO reports (service_request_id, technician_id, repair_details, resolution_summary, completion_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		rep.ServiceRequestID, rep.TechnicianID, rep.RepairDetails, rep.ResolutionSummary, rep.CompletionDate,
	).Scan(&rep.ID, &rep.CreatedAt)

	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return domain.ErrReportExists
		}
		if hasCode(err, pgForeignKeyViolation) {
			return domain.ErrServiceRequestNotFound
		}
		return fmt.Errorf("repository: failed to create report for request %d: %w", rep.ServiceRequestID, err)
	}

	return nil
}

// ListReportsByTechnician возвращает отчеты техника, новые первыми
func (r *ServiceRequestRepository) ListReportsByTechnician(ctx context.Context, technicianID int64) ([]*domain.Report, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, service_request_id, technician_id, repair_details, resolution_summary, completion_date, created_at
		 FROM reports
		 WHERE technician_id = $1
		 ORDER BY created_at DESC, id DESC`,
		technicianID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list reports for technician %d: %w", technicianID, err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		rep := &domain.Report{}
		err := rows.Scan(&rep.ID, &rep.ServiceRequestID, &rep.TechnicianID, &rep.RepairDetails,
			&rep.ResolutionSummary, &rep.CompletionDate, &rep.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating reports: %w", err)
	}

	return reports, nil
}

// scanServiceRequest читает строку serviceRequestSelect.
// Колонки оценки и отчета равны NULL, если их нет.
func scanServiceRequest(row pgx.Row) (*domain.ServiceRequest, error) {
	sr := &domain.ServiceRequest{}

	var (
		couponDiscount *float64

		estimateID         *int64
		estimateTechnician *int64
		estimateCost       *int64
		estimateDate       *time.Time
		estimateNotes      *string
		estimateCreated    *time.Time

		reportID         *int64
		reportTechnician *int64
		reportDetails    *string
		reportSummary    *string
		reportDate       *time.Time
		reportCreated    *time.Time
	)

	err := row.Scan(
		&sr.ID, &sr.CustomerID, &sr.TechnicianID,
		&sr.Item.Name, &sr.Item.Condition, &sr.Item.IssueDescription,
		&sr.RequestedServiceDate, &sr.Status, &sr.CouponCode, &couponDiscount,
		&sr.PaymentMethodID, &sr.FinalCost, &sr.CreatedAt, &sr.UpdatedAt,
		&estimateID, &estimateTechnician, &estimateCost, &estimateDate, &estimateNotes, &estimateCreated,
		&reportID, &reportTechnician, &reportDetails, &reportSummary, &reportDate, &reportCreated,
	)
	if err != nil {
		return nil, err
	}

	if sr.CouponCode != nil && couponDiscount != nil {
		sr.Coupon = &domain.CouponSnapshot{Code: *sr.CouponCode, DiscountValue: *couponDiscount}
	}

	if estimateID != nil {
		sr.Estimate = &domain.Estimate{
			ID:               *estimateID,
			ServiceRequestID: sr.ID,
			TechnicianID:     deref(estimateTechnician),
			Cost:             deref(estimateCost),
			CompletionDate:   deref(estimateDate),
			Notes:            deref(estimateNotes),
			CreatedAt:        deref(estimateCreated),
		}
	}

	if reportID != nil {
		sr.Report = &domain.Report{
			ID:                *reportID,
			ServiceRequestID:  sr.ID,
			TechnicianID:      deref(reportTechnician),
			RepairDetails:     deref(reportDetails),
			ResolutionSummary: deref(reportSummary),
			CompletionDate:    deref(reportDate),
			CreatedAt:         deref(reportCreated),
		}
	}

	return sr, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
