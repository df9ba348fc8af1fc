package service

import (
	"context"
	"strings"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/avc/repairhub/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CouponService реализует domain.CouponService
type CouponService struct {
	store  domain.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewCouponService создает новый CouponService
func NewCouponService(store domain.Store, logger *zap.Logger) *CouponService {
	return &CouponService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Validate проверяет купон без изменения счетчика (предпросмотр скидки)
func (s *CouponService) Validate(ctx context.Context, actor domain.Actor, code string) (*domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.InvalidInputf("coupon code is required")
	}

	c, err := s.store.Coupons().GetCoupon(ctx, code)
	if err != nil {
		return nil, wrapErr(err, "coupon service: failed to get coupon %q", code)
	}
	if err := c.Check(s.now()); err != nil {
		return nil, err
	}

	return c, nil
}

// ValidateAndUse атомарно проверяет купон и расходует одно использование
func (s *CouponService) ValidateAndUse(ctx context.Context, actor domain.Actor, code string) (*domain.CouponSnapshot, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.InvalidInputf("coupon code is required")
	}

	var snapshot *domain.CouponSnapshot
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		var err error
		snapshot, err = redeemCoupon(ctx, repos, code, s.now())
		return err
	})
	metrics.CouponRedemptions.WithLabelValues(metrics.ErrorResult(err)).Inc()
	if err != nil {
		return nil, wrapErr(err, "coupon service: failed to redeem coupon %q", code)
	}

	s.logger.Info("coupon redeemed", zap.String("code", code), zap.Int64("user_id", actor.UserID))
	return snapshot, nil
}

// CreateCoupon создает купон. Пустой код генерируется.
func (s *CouponService) CreateCoupon(ctx context.Context, actor domain.Actor, c *domain.Coupon) (*domain.Coupon, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	c.Code = strings.TrimSpace(c.Code)
	if c.Code == "" {
		c.Code = generateCouponCode()
	}
	c.UsageCount = 0
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Coupons().CreateCoupon(ctx, c); err != nil {
		return nil, wrapErr(err, "coupon service: failed to create coupon %q", c.Code)
	}

	s.logger.Info("coupon created", zap.String("code", c.Code), zap.Int("max_usage", c.MaxUsage))
	return c, nil
}

// ListCoupons возвращает все купоны
func (s *CouponService) ListCoupons(ctx context.Context, actor domain.Actor) ([]*domain.Coupon, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	list, err := s.store.Coupons().ListCoupons(ctx)
	if err != nil {
		return nil, wrapErr(err, "coupon service: failed to list coupons")
	}
	return list, nil
}

// UpdateCoupon меняет скидку, лимит и срок действия.
// Лимит не может стать меньше уже сделанных использований.
func (s *CouponService) UpdateCoupon(ctx context.Context, actor domain.Actor, code string, in *domain.Coupon) (*domain.Coupon, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	var updated *domain.Coupon
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		c, err := repos.Coupons().GetCouponForUpdate(ctx, code)
		if err != nil {
			return err
		}

		c.DiscountValue = in.DiscountValue
		c.MaxUsage = in.MaxUsage
		c.ExpiryDate = in.ExpiryDate
		if err := c.Validate(); err != nil {
			return err
		}

		updated = c
		return repos.Coupons().UpdateCoupon(ctx, c)
	})
	if err != nil {
		return nil, wrapErr(err, "coupon service: failed to update coupon %q", code)
	}

	return updated, nil
}

// DeleteCoupon удаляет купон. Скидки в уже созданных заявках сохраняются.
func (s *CouponService) DeleteCoupon(ctx context.Context, actor domain.Actor, code string) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.store.Coupons().DeleteCoupon(ctx, code); err != nil {
		return wrapErr(err, "coupon service: failed to delete coupon %q", code)
	}
	return nil
}

// redeemCoupon блокирует купон, проверяет срок и лимит и увеличивает счетчик.
// Вызывается только внутри WithinTx.
func redeemCoupon(ctx context.Context, repos domain.Repositories, code string, now time.Time) (*domain.CouponSnapshot, error) {
	c, err := repos.Coupons().GetCouponForUpdate(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := c.Redeem(now); err != nil {
		return nil, err
	}

	if err := repos.Coupons().UpdateCoupon(ctx, c); err != nil {
		return nil, err
	}

	return c.Snapshot(), nil
}

func generateCouponCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
