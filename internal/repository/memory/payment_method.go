package memory

import (
	"context"
	"sort"

	"github.com/avc/repairhub/internal/domain"
)

type paymentMethods struct {
	repos
}

func (r *paymentMethods) ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := make([]*domain.PaymentMethod, 0)
	r.store.read(func(st *state) {
		for _, p := range st.methods {
			v := *p
			list = append(list, &v)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return list, nil
}

func (r *paymentMethods) GetPaymentMethod(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var p *domain.PaymentMethod
	r.store.read(func(st *state) {
		if cur, ok := st.methods[id]; ok {
			v := *cur
			p = &v
		}
	})
	if p == nil {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return p, nil
}

func (r *paymentMethods) CreatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.ID = r.store.nextID()
	stored := *p

	return r.write(func(next *state) error {
		next.methods[stored.ID] = &stored
		return nil
	})
}

func (r *paymentMethods) UpdatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upd := *p

	return r.write(func(next *state) error {
		if _, ok := next.methods[upd.ID]; !ok {
			return domain.ErrPaymentMethodNotFound
		}
		next.methods[upd.ID] = &upd
		return nil
	})
}

// DeletePaymentMethod отклоняет удаление способа оплаты, на который ссылаются заявки
func (r *paymentMethods) DeletePaymentMethod(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(func(next *state) error {
		if _, ok := next.methods[id]; !ok {
			return domain.ErrPaymentMethodNotFound
		}
		for _, sr := range next.requests {
			if sr.PaymentMethodID == id {
				return domain.InvalidStatef("payment method %d is used by service requests", id)
			}
		}
		delete(next.methods, id)
		return nil
	})
}
