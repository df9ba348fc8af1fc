package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/avc/repairhub/internal/domain"
)

type reviews struct {
	repos
}

func reviewKey(id int64) string {
	return fmt.Sprintf("review:%d", id)
}

// CreateReview сохраняет отзыв. Второй отзыв на ту же заявку отклоняется при фиксации.
func (r *reviews) CreateReview(ctx context.Context, rv *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.store.now()
	rv.ID = r.store.nextID()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	stored := *rv

	return r.write(func(next *state) error {
		if _, ok := next.requests[stored.ServiceRequestID]; !ok {
			return domain.ErrServiceRequestNotFound
		}
		for _, cur := range next.reviews {
			if cur.ServiceRequestID == stored.ServiceRequestID {
				return domain.ErrReviewExists
			}
		}
		next.reviews[stored.ID] = &stored
		return nil
	})
}

func (r *reviews) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rv *domain.Review
	r.store.read(func(st *state) {
		if cur, ok := st.reviews[id]; ok {
			v := *cur
			rv = &v
		}
	})
	if rv == nil {
		return nil, domain.ErrReviewNotFound
	}
	return rv, nil
}

// GetReviewForUpdate блокирует отзыв до конца транзакции
func (r *reviews) GetReviewForUpdate(ctx context.Context, id int64) (*domain.Review, error) {
	if err := r.lock(ctx, reviewKey(id)); err != nil {
		return nil, err
	}
	return r.GetReview(ctx, id)
}

func (r *reviews) UpdateReview(ctx context.Context, rv *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rv.UpdatedAt = r.store.now()
	upd := *rv

	return r.write(func(next *state) error {
		cur, ok := next.reviews[upd.ID]
		if !ok {
			return domain.ErrReviewNotFound
		}
		// Заявка, авторы и дата создания отзыва не меняются
		upd.ServiceRequestID = cur.ServiceRequestID
		upd.CustomerID = cur.CustomerID
		upd.TechnicianID = cur.TechnicianID
		upd.CreatedAt = cur.CreatedAt
		next.reviews[upd.ID] = &upd
		return nil
	})
}

func (r *reviews) DeleteReview(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(func(next *state) error {
		if _, ok := next.reviews[id]; !ok {
			return domain.ErrReviewNotFound
		}
		delete(next.reviews, id)
		return nil
	})
}

func (r *reviews) ListReviewsByTechnician(ctx context.Context, technicianID int64) ([]*domain.Review, error) {
	return r.list(ctx, func(rv *domain.Review) bool { return rv.TechnicianID == technicianID })
}

func (r *reviews) ListReviewsByCustomer(ctx context.Context, customerID int64) ([]*domain.Review, error) {
	return r.list(ctx, func(rv *domain.Review) bool { return rv.CustomerID == customerID })
}

// list возвращает отзывы по фильтру, новые первыми
func (r *reviews) list(ctx context.Context, match func(rv *domain.Review) bool) ([]*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := make([]*domain.Review, 0)
	r.store.read(func(st *state) {
		for _, rv := range st.reviews {
			if match(rv) {
				v := *rv
				list = append(list, &v)
			}
		}
	})

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})

	return list, nil
}
