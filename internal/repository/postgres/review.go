package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, service_request_id, customer_id, technician_id, rating, comment, created_at, updated_at`

// ReviewRepository реализует domain.ReviewRepository
type ReviewRepository struct {
	db DBTX
}

// NewReviewRepository создает новый ReviewRepository
func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview создает отзыв. Уникальность по заявке обеспечивает индекс.
func (r *ReviewRepository) CreateReview(ctx context.Context, rv *domain.Review) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (service_request_id, customer_id, technician_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		rv.ServiceRequestID, rv.CustomerID, rv.TechnicianID, rv.Rating, rv.Comment,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)

	if err != nil {
		switch {
		case hasCode(err, pgUniqueViolation):
			return domain.ErrReviewExists
		case hasCode(err, pgForeignKeyViolation):
			return domain.ErrServiceRequestNotFound
		case hasCode(err, pgCheckViolation):
			return domain.InvalidInputf("review violates constraints")
		}
		return fmt.Errorf("repository: failed to create review for request %d: %w", rv.ServiceRequestID, err)
	}

	return nil
}

// GetReview получает отзыв по ID
func (r *ReviewRepository) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	return r.get(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

// GetReviewForUpdate получает отзыв и блокирует его до конца транзакции
func (r *ReviewRepository) GetReviewForUpdate(ctx context.Context, id int64) (*domain.Review, error) {
	return r.get(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1 FOR UPDATE`, id)
}

func (r *ReviewRepository) get(ctx context.Context, query string, id int64) (*domain.Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("repository: failed to get review %d: %w", id, err)
	}
	return rv, nil
}

// UpdateReview сохраняет оценку и комментарий
func (r *ReviewRepository) UpdateReview(ctx context.Context, rv *domain.Review) error {
	err := r.db.QueryRow(ctx,
		`UPDATE reviews SET rating = $2, comment = $3, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		rv.ID, rv.Rating, rv.Comment,
	).Scan(&rv.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReviewNotFound
		}
		if hasCode(err, pgCheckViolation) {
			return domain.InvalidInputf("review violates constraints")
		}
		return fmt.Errorf("repository: failed to update review %d: %w", rv.ID, err)
	}

	return nil
}

// DeleteReview удаляет отзыв
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete review %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// ListReviewsByTechnician возвращает отзывы о технике, новые первыми
func (r *ReviewRepository) ListReviewsByTechnician(ctx context.Context, technicianID int64) ([]*domain.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE technician_id = $1 ORDER BY created_at DESC, id DESC`, technicianID)
}

// ListReviewsByCustomer возвращает отзывы клиента, новые первыми
func (r *ReviewRepository) ListReviewsByCustomer(ctx context.Context, customerID int64) ([]*domain.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`, customerID)
}

func (r *ReviewRepository) list(ctx context.Context, query string, userID int64) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list reviews for user %d: %w", userID, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating reviews: %w", err)
	}

	return reviews, nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	rv := &domain.Review{}
	err := row.Scan(&rv.ID, &rv.ServiceRequestID, &rv.CustomerID, &rv.TechnicianID,
		&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}
