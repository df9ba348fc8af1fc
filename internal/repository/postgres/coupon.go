package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

const couponColumns = `code, discount_value, max_usage, usage_count, expiry_date, created_at`

// CouponRepository реализует domain.CouponRepository
type CouponRepository struct {
	db DBTX
}

// NewCouponRepository создает новый CouponRepository
func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

// CreateCoupon создает купон
func (r *CouponRepository) CreateCoupon(ctx context.Context, c *domain.Coupon) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO coupons (code, discount_value, max_usage, usage_count, expiry_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		c.Code, c.DiscountValue, c.MaxUsage, c.UsageCount, c.ExpiryDate,
	).Scan(&c.CreatedAt)

	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return domain.ErrCouponExists
		}
		if hasCode(err, pgCheckViolation) {
			return domain.InvalidInputf("coupon %q violates constraints", c.Code)
		}
		return fmt.Errorf("repository: failed to create coupon %q: %w", c.Code, err)
	}

	return nil
}

// GetCoupon получает купон по коду
func (r *CouponRepository) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	return r.get(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)
}

// GetCouponForUpdate получает купон и блокирует его до конца транзакции.
// Параллельные погашения одного кода выполняются по очереди.
func (r *CouponRepository) GetCouponForUpdate(ctx context.Context, code string) (*domain.Coupon, error) {
	return r.get(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1 FOR UPDATE`, code)
}

func (r *CouponRepository) get(ctx context.Context, query, code string) (*domain.Coupon, error) {
	c := &domain.Coupon{}

	err := r.db.QueryRow(ctx, query, code).
		Scan(&c.Code, &c.DiscountValue, &c.MaxUsage, &c.UsageCount, &c.ExpiryDate, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get coupon %q: %w", code, err)
	}

	return c, nil
}

// UpdateCoupon сохраняет параметры и счетчик использований купона
func (r *CouponRepository) UpdateCoupon(ctx context.Context, c *domain.Coupon) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons
		 SET discount_value = $2, max_usage = $3, usage_count = $4, expiry_date = $5
		 WHERE code = $1`,
		c.Code, c.DiscountValue, c.MaxUsage, c.UsageCount, c.ExpiryDate,
	)
	if err != nil {
		if hasCode(err, pgCheckViolation) {
			return domain.InvalidInputf("coupon %q violates constraints", c.Code)
		}
		return fmt.Errorf("repository: failed to update coupon %q: %w", c.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

// DeleteCoupon удаляет купон. Заявки хранят снимок скидки и не зависят от купона.
func (r *CouponRepository) DeleteCoupon(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("repository: failed to delete coupon %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

// ListCoupons возвращает все купоны
func (r *CouponRepository) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC, code`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list coupons: %w", err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		c := &domain.Coupon{}
		if err := rows.Scan(&c.Code, &c.DiscountValue, &c.MaxUsage, &c.UsageCount, &c.ExpiryDate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating coupons: %w", err)
	}

	return coupons, nil
}
