package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/avc/repairhub/internal/metrics"
	"go.uber.org/zap"
)

// ServiceRequestService реализует domain.ServiceRequestService.
// Каждая операция изменения выполняется в одной транзакции хранилища:
// заявка читается под блокировкой, переход проверяется по таблице domain.transitions
// и сохраняется до освобождения блокировки.
type ServiceRequestService struct {
	store    domain.Store
	notifier domain.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewServiceRequestService создает новый ServiceRequestService
func NewServiceRequestService(store domain.Store, notifier domain.Notifier, logger *zap.Logger) *ServiceRequestService {
	return &ServiceRequestService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Create создает заявку в статусе PENDING.
// Купон, если указан, погашается в той же транзакции: при ошибке заявка не создается
// и счетчик использований не меняется.
func (s *ServiceRequestService) Create(ctx context.Context, actor domain.Actor, in domain.ServiceRequestInput) (*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}

	now := s.now()
	if err := in.Validate(now); err != nil {
		return nil, err
	}

	sr := &domain.ServiceRequest{
		CustomerID:           actor.UserID,
		Item:                 trimItem(in.Item),
		RequestedServiceDate: in.RequestedServiceDate,
		Status:               domain.StatusPending,
		PaymentMethodID:      in.PaymentMethodID,
	}
	code := strings.TrimSpace(in.CouponCode)

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		if _, err := repos.PaymentMethods().GetPaymentMethod(ctx, in.PaymentMethodID); err != nil {
			return err
		}

		if code != "" {
			snapshot, err := redeemCoupon(ctx, repos, code, now)
			if err != nil {
				return err
			}
			sr.Coupon = snapshot
		}

		return repos.ServiceRequests().CreateServiceRequest(ctx, sr)
	})
	if code != "" {
		metrics.CouponRedemptions.WithLabelValues(metrics.ErrorResult(err)).Inc()
	}
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to create request for customer %d", actor.UserID)
	}

	s.logger.Info("service request created",
		zap.Int64("request_id", sr.ID),
		zap.Int64("customer_id", sr.CustomerID),
		zap.String("coupon", code),
	)

	return sr, nil
}

// Get возвращает заявку, если актор имеет право ее видеть
func (s *ServiceRequestService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.ServiceRequest, error) {
	sr, err := s.store.ServiceRequests().GetServiceRequest(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to get request %d", id)
	}
	if !actor.CanView(sr) {
		return nil, domain.ErrForbidden
	}
	return sr, nil
}

// ListForCustomer возвращает заявки клиента
func (s *ServiceRequestService) ListForCustomer(ctx context.Context, actor domain.Actor) ([]*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}

	list, err := s.store.ServiceRequests().ListByCustomer(ctx, actor.UserID)
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to list requests for customer %d", actor.UserID)
	}
	return list, nil
}

// ListForTechnician возвращает заявки, открытые для оценки, и заявки техника
func (s *ServiceRequestService) ListForTechnician(ctx context.Context, actor domain.Actor, status domain.ServiceRequestStatus) ([]*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, domain.InvalidInputf("unknown status %q", status)
	}

	list, err := s.store.ServiceRequests().ListForTechnician(ctx, actor.UserID, status)
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to list requests for technician %d", actor.UserID)
	}
	return list, nil
}

// Update меняет поля заявки. Разрешено владельцу, пока заявка в PENDING или REJECTED.
// Купон привязывается только при создании.
func (s *ServiceRequestService) Update(ctx context.Context, actor domain.Actor, id int64, in domain.ServiceRequestInput) (*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}
	if err := in.Validate(s.now()); err != nil {
		return nil, err
	}

	var updated *domain.ServiceRequest
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := s.lockModifiable(ctx, repos, actor, id)
		if err != nil {
			return err
		}

		if code := strings.TrimSpace(in.CouponCode); code != "" && (sr.CouponCode == nil || *sr.CouponCode != code) {
			return domain.InvalidInputf("coupon cannot be changed after the request is created")
		}
		if sr.PaymentMethodID != in.PaymentMethodID {
			if _, err := repos.PaymentMethods().GetPaymentMethod(ctx, in.PaymentMethodID); err != nil {
				return err
			}
		}

		sr.Item = trimItem(in.Item)
		sr.RequestedServiceDate = in.RequestedServiceDate
		sr.PaymentMethodID = in.PaymentMethodID

		updated = sr
		return repos.ServiceRequests().UpdateServiceRequest(ctx, sr)
	})
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to update request %d", id)
	}

	return updated, nil
}

// Delete удаляет заявку. Разрешено владельцу, пока заявка в PENDING или REJECTED.
func (s *ServiceRequestService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		if _, err := s.lockModifiable(ctx, repos, actor, id); err != nil {
			return err
		}
		return repos.ServiceRequests().DeleteServiceRequest(ctx, id)
	})
	if err != nil {
		return wrapErr(err, "service request service: failed to delete request %d", id)
	}

	s.logger.Info("service request deleted", zap.Int64("request_id", id))
	return nil
}

func (s *ServiceRequestService) lockModifiable(ctx context.Context, repos domain.Repositories, actor domain.Actor, id int64) (*domain.ServiceRequest, error) {
	sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.OwnsRequest(sr) {
		return nil, domain.ErrForbidden
	}
	if !sr.Status.Modifiable() {
		return nil, domain.ErrServiceRequestLocked
	}
	return sr, nil
}

// StartWork переводит принятую заявку в IN_PROGRESS. Только назначенный техник.
func (s *ServiceRequestService) StartWork(ctx context.Context, actor domain.Actor, id int64) (*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}

	var updated *domain.ServiceRequest
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.AssignedTo(sr) {
			return domain.ErrForbidden
		}
		if err := sr.Apply(domain.EventStartWork); err != nil {
			return err
		}

		updated = sr
		return repos.ServiceRequests().UpdateServiceRequest(ctx, sr)
	})
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to start work on request %d", id)
	}

	recordTransition(domain.StatusAccepted, domain.StatusInProgress)
	s.logger.Info("work started", zap.Int64("request_id", id), zap.Int64("technician_id", actor.UserID))

	return updated, nil
}

// Complete завершает работы и проводит расчет.
// Сумма к оплате считается со скидкой купона и списывается с кошелька клиента
// в той же транзакции, что и переход в COMPLETED: при нехватке средств заявка
// остается IN_PROGRESS.
func (s *ServiceRequestService) Complete(ctx context.Context, actor domain.Actor, id int64, finalPrice int64) (*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}
	if finalPrice <= 0 {
		return nil, domain.InvalidInputf("final price must be positive")
	}

	var (
		updated *domain.ServiceRequest
		due     int64
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.AssignedTo(sr) {
			return domain.ErrForbidden
		}
		if err := sr.Apply(domain.EventComplete); err != nil {
			return err
		}

		due = sr.AmountDue(finalPrice)
		if due > 0 {
			description := fmt.Sprintf("Payment for service request #%d", sr.ID)
			_, err := postTransaction(ctx, repos, sr.CustomerID, domain.TransactionTypeServicePayment, due, description, s.now())
			if errors.Is(err, domain.ErrWalletNotFound) {
				// Кошелек при расчете не создается: без него баланс клиента нулевой
				return domain.ErrInsufficientFunds
			}
			if err != nil {
				return err
			}
		}
		sr.FinalCost = &due

		updated = sr
		return repos.ServiceRequests().UpdateServiceRequest(ctx, sr)
	})
	metrics.Settlements.WithLabelValues(metrics.ErrorResult(err)).Inc()
	if err != nil {
		return nil, wrapErr(err, "service request service: failed to complete request %d", id)
	}

	recordTransition(domain.StatusInProgress, domain.StatusCompleted)
	if due > 0 {
		metrics.WalletTransactions.WithLabelValues(string(domain.TransactionTypeServicePayment)).Inc()
	}
	s.logger.Info("service request settled",
		zap.Int64("request_id", id),
		zap.Int64("final_price", finalPrice),
		zap.Int64("amount_due", due),
	)
	notify(ctx, s.notifier, domain.NotificationWorkCompleted, updated.CustomerID, id,
		fmt.Sprintf("Work on service request #%d is completed, charged %d", id, due))

	return updated, nil
}

// AdvanceStatus переводит заявку в указанный статус технической операцией.
// Поддерживаются только IN_PROGRESS и COMPLETED (с итоговой ценой).
func (s *ServiceRequestService) AdvanceStatus(ctx context.Context, actor domain.Actor, id int64, status domain.ServiceRequestStatus, finalPrice *int64) (*domain.ServiceRequest, error) {
	switch status {
	case domain.StatusInProgress:
		return s.StartWork(ctx, actor, id)
	case domain.StatusCompleted:
		if finalPrice == nil {
			return nil, domain.InvalidInputf("final price is required to complete a request")
		}
		return s.Complete(ctx, actor, id, *finalPrice)
	default:
		return nil, domain.InvalidStatef("cannot advance a request to %s", status)
	}
}

func recordTransition(from, to domain.ServiceRequestStatus) {
	metrics.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func trimItem(item domain.Item) domain.Item {
	return domain.Item{
		Name:             strings.TrimSpace(item.Name),
		Condition:        strings.TrimSpace(item.Condition),
		IssueDescription: strings.TrimSpace(item.IssueDescription),
	}
}
