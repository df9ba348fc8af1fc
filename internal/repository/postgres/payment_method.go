package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepository реализует domain.PaymentMethodRepository
type PaymentMethodRepository struct {
	db DBTX
}

// NewPaymentMethodRepository создает новый PaymentMethodRepository
func NewPaymentMethodRepository(db DBTX) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// ListPaymentMethods возвращает справочник способов оплаты
func (r *PaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, provider FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list payment methods: %w", err)
	}
	defer rows.Close()

	methods := make([]*domain.PaymentMethod, 0)
	for rows.Next() {
		p := &domain.PaymentMethod{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Provider); err != nil {
			return nil, fmt.Errorf("repository: failed to scan payment method: %w", err)
		}
		methods = append(methods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating payment methods: %w", err)
	}

	return methods, nil
}

// GetPaymentMethod получает способ оплаты по ID
func (r *PaymentMethodRepository) GetPaymentMethod(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	p := &domain.PaymentMethod{}

	err := r.db.QueryRow(ctx, `SELECT id, name, provider FROM payment_methods WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Provider)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("repository: failed to get payment method %d: %w", id, err)
	}

	return p, nil
}

// CreatePaymentMethod создает способ оплаты
func (r *PaymentMethodRepository) CreatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payment_methods (name, provider) VALUES ($1, $2) RETURNING id`,
		p.Name, p.Provider,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to create payment method %q: %w", p.Name, err)
	}
	return nil
}

// UpdatePaymentMethod обновляет способ оплаты
func (r *PaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payment_methods SET name = $2, provider = $3 WHERE id = $1`,
		p.ID, p.Name, p.Provider,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update payment method %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

// DeletePaymentMethod удаляет способ оплаты, если на него не ссылается ни одна заявка
func (r *PaymentMethodRepository) DeletePaymentMethod(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return domain.InvalidStatef("payment method %d is used by service requests", id)
		}
		return fmt.Errorf("repository: failed to delete payment method %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}
