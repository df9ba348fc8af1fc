package memory

import (
	"context"
	"sort"

	"github.com/avc/repairhub/internal/domain"
)

type coupons struct {
	repos
}

func couponKey(code string) string {
	return "coupon:" + code
}

func (r *coupons) CreateCoupon(ctx context.Context, c *domain.Coupon) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.CreatedAt = r.store.now()
	stored := *c

	return r.write(func(next *state) error {
		if _, ok := next.coupons[stored.Code]; ok {
			return domain.ErrCouponExists
		}
		next.coupons[stored.Code] = &stored
		return nil
	})
}

func (r *coupons) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var c *domain.Coupon
	r.store.read(func(st *state) {
		if cur, ok := st.coupons[code]; ok {
			v := *cur
			c = &v
		}
	})
	if c == nil {
		return nil, domain.ErrCouponNotFound
	}
	return c, nil
}

// GetCouponForUpdate блокирует код купона до конца транзакции
func (r *coupons) GetCouponForUpdate(ctx context.Context, code string) (*domain.Coupon, error) {
	if err := r.lock(ctx, couponKey(code)); err != nil {
		return nil, err
	}
	return r.GetCoupon(ctx, code)
}

func (r *coupons) UpdateCoupon(ctx context.Context, c *domain.Coupon) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upd := *c

	return r.write(func(next *state) error {
		cur, ok := next.coupons[upd.Code]
		if !ok {
			return domain.ErrCouponNotFound
		}
		if upd.UsageCount < 0 || upd.UsageCount > upd.MaxUsage {
			return domain.InvalidInputf("coupon %q violates constraints", upd.Code)
		}
		upd.CreatedAt = cur.CreatedAt
		next.coupons[upd.Code] = &upd
		return nil
	})
}

func (r *coupons) DeleteCoupon(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(func(next *state) error {
		if _, ok := next.coupons[code]; !ok {
			return domain.ErrCouponNotFound
		}
		delete(next.coupons, code)
		return nil
	})
}

func (r *coupons) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := make([]*domain.Coupon, 0)
	r.store.read(func(st *state) {
		for _, c := range st.coupons {
			v := *c
			list = append(list, &v)
		}
	})

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].Code < list[j].Code
	})

	return list, nil
}
