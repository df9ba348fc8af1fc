package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/avc/repairhub/internal/domain"
)

type serviceRequests struct {
	repos
}

func requestKey(id int64) string {
	return fmt.Sprintf("service_request:%d", id)
}

func (r *serviceRequests) CreateServiceRequest(ctx context.Context, sr *domain.ServiceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.store.now()
	sr.ID = r.store.nextID()
	sr.CreatedAt = now
	sr.UpdatedAt = now
	sr.CouponCode = nil
	if sr.Coupon != nil {
		code := sr.Coupon.Code
		sr.CouponCode = &code
	}

	stored := cloneRequest(sr)
	stored.Estimate = nil
	stored.Report = nil

	return r.write(func(next *state) error {
		if _, ok := next.methods[stored.PaymentMethodID]; !ok {
			return domain.ErrPaymentMethodNotFound
		}
		next.requests[stored.ID] = stored
		return nil
	})
}

func (r *serviceRequests) GetServiceRequest(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sr *domain.ServiceRequest
	r.store.read(func(st *state) {
		sr = cloneRequest(st.requests[id])
	})
	if sr == nil {
		return nil, domain.ErrServiceRequestNotFound
	}
	return sr, nil
}

// GetServiceRequestForUpdate блокирует заявку до конца транзакции и читает ее после захвата
func (r *serviceRequests) GetServiceRequestForUpdate(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	if err := r.lock(ctx, requestKey(id)); err != nil {
		return nil, err
	}
	return r.GetServiceRequest(ctx, id)
}

// UpdateServiceRequest заменяет изменяемые поля. Купон, оценка и отчет сохраняются отдельно.
func (r *serviceRequests) UpdateServiceRequest(ctx context.Context, sr *domain.ServiceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sr.UpdatedAt = r.store.now()
	upd := cloneRequest(sr)

	return r.write(func(next *state) error {
		cur, ok := next.requests[upd.ID]
		if !ok {
			return domain.ErrServiceRequestNotFound
		}
		if _, ok := next.methods[upd.PaymentMethodID]; !ok {
			return domain.ErrPaymentMethodNotFound
		}

		merged := cloneRequest(cur)
		merged.TechnicianID = upd.TechnicianID
		merged.Item = upd.Item
		merged.RequestedServiceDate = upd.RequestedServiceDate
		merged.Status = upd.Status
		merged.PaymentMethodID = upd.PaymentMethodID
		merged.FinalCost = upd.FinalCost
		merged.UpdatedAt = upd.UpdatedAt

		next.requests[upd.ID] = merged
		return nil
	})
}

func (r *serviceRequests) DeleteServiceRequest(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(func(next *state) error {
		if _, ok := next.requests[id]; !ok {
			return domain.ErrServiceRequestNotFound
		}
		delete(next.requests, id)
		return nil
	})
}

func (r *serviceRequests) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, func(sr *domain.ServiceRequest) bool {
		return sr.CustomerID == customerID
	})
}

// ListForTechnician возвращает открытые для оценки заявки и заявки техника
func (r *serviceRequests) ListForTechnician(ctx context.Context, technicianID int64, status domain.ServiceRequestStatus) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, func(sr *domain.ServiceRequest) bool {
		if status != "" && sr.Status != status {
			return false
		}
		if sr.Status == domain.StatusPending {
			return true
		}
		if sr.TechnicianID != nil && *sr.TechnicianID == technicianID {
			return true
		}
		return sr.Estimate != nil && sr.Estimate.TechnicianID == technicianID
	})
}

func (r *serviceRequests) list(ctx context.Context, match func(sr *domain.ServiceRequest) bool) ([]*domain.ServiceRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requests := make([]*domain.ServiceRequest, 0)
	r.store.read(func(st *state) {
		for _, sr := range st.requests {
			if match(sr) {
				requests = append(requests, cloneRequest(sr))
			}
		}
	})

	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})

	return requests, nil
}

func (r *serviceRequests) CreateEstimate(ctx context.Context, e *domain.Estimate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.ID = r.store.nextID()
	e.CreatedAt = r.store.now()
	stored := *e

	return r.write(func(next *state) error {
		cur, ok := next.requests[stored.ServiceRequestID]
		if !ok {
			return domain.ErrServiceRequestNotFound
		}
		if cur.Estimate != nil {
			return domain.ErrEstimateExists
		}

		upd := cloneRequest(cur)
		estimate := stored
		upd.Estimate = &estimate
		next.requests[upd.ID] = upd
		return nil
	})
}

func (r *serviceRequests) CreateReport(ctx context.Context, rep *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rep.ID = r.store.nextID()
	rep.CreatedAt = r.store.now()
	stored := *rep

	return r.write(func(next *state) error {
		cur, ok := next.requests[stored.ServiceRequestID]
		if !ok {
			return domain.ErrServiceRequestNotFound
		}
		if cur.Report != nil {
			return domain.ErrReportExists
		}

		upd := cloneRequest(cur)
		report := stored
		upd.Report = &report
		next.requests[upd.ID] = upd
		return nil
	})
}

func (r *serviceRequests) ListReportsByTechnician(ctx context.Context, technicianID int64) ([]*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]*domain.Report, 0)
	r.store.read(func(st *state) {
		for _, sr := range st.requests {
			if sr.Report != nil && sr.Report.TechnicianID == technicianID {
				rep := *sr.Report
				reports = append(reports, &rep)
			}
		}
	})

	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID > reports[j].ID
	})

	return reports, nil
}

// cloneRequest копирует заявку вместе со всеми вложенными указателями
func cloneRequest(sr *domain.ServiceRequest) *domain.ServiceRequest {
	if sr == nil {
		return nil
	}

	c := *sr
	if sr.TechnicianID != nil {
		v := *sr.TechnicianID
		c.TechnicianID = &v
	}
	if sr.CouponCode != nil {
		v := *sr.CouponCode
		c.CouponCode = &v
	}
	if sr.Coupon != nil {
		v := *sr.Coupon
		c.Coupon = &v
	}
	if sr.Estimate != nil {
		v := *sr.Estimate
		c.Estimate = &v
	}
	if sr.Report != nil {
		v := *sr.Report
		c.Report = &v
	}
	if sr.FinalCost != nil {
		v := *sr.FinalCost
		c.FinalCost = &v
	}
	return &c
}
