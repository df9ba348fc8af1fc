package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

// EstimateService реализует domain.EstimateService
type EstimateService struct {
	store    domain.Store
	notifier domain.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewEstimateService создает новый EstimateService
func NewEstimateService(store domain.Store, notifier domain.Notifier, logger *zap.Logger) *EstimateService {
	return &EstimateService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateEstimate прикрепляет оценку техника к заявке в статусе PENDING.
// На заявку допускается только одна оценка.
func (s *EstimateService) CreateEstimate(ctx context.Context, actor domain.Actor, requestID int64, in domain.EstimateInput) (*domain.Estimate, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}
	if err := in.Validate(s.now()); err != nil {
		return nil, err
	}

	var (
		estimate   *domain.Estimate
		customerID int64
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := sr.Apply(domain.EventSubmitEstimate); err != nil {
			return err
		}

		estimate = &domain.Estimate{
			ServiceRequestID: sr.ID,
			TechnicianID:     actor.UserID,
			Cost:             in.Cost,
			CompletionDate:   in.CompletionDate,
			Notes:            strings.TrimSpace(in.Notes),
		}
		if err := repos.ServiceRequests().CreateEstimate(ctx, estimate); err != nil {
			return err
		}
		customerID = sr.CustomerID

		return repos.ServiceRequests().UpdateServiceRequest(ctx, sr)
	})
	if err != nil {
		return nil, wrapErr(err, "estimate service: failed to create estimate for request %d", requestID)
	}

	recordTransition(domain.StatusPending, domain.StatusEstimated)
	s.logger.Info("estimate submitted",
		zap.Int64("request_id", requestID),
		zap.Int64("technician_id", actor.UserID),
		zap.Int64("cost", in.Cost),
	)
	notify(ctx, s.notifier, domain.NotificationEstimateSubmitted, customerID, requestID,
		fmt.Sprintf("Estimate of %d submitted for service request #%d", in.Cost, requestID))

	return estimate, nil
}

// RespondToEstimate принимает или отклоняет оценку.
// Отклонение удаляет заявку целиком; отзыв клиента уходит только в уведомление.
// Использованный купон при этом не возвращается.
func (s *EstimateService) RespondToEstimate(ctx context.Context, actor domain.Actor, requestID int64, action domain.EstimateAction, feedback string) (*domain.ServiceRequest, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}

	var event domain.Event
	switch action {
	case domain.EstimateActionAccept:
		event = domain.EventAccept
	case domain.EstimateActionReject:
		event = domain.EventReject
	default:
		return nil, domain.InvalidInputf("unknown estimate action %q", action)
	}

	var responded *domain.ServiceRequest
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !actor.OwnsRequest(sr) {
			return domain.ErrForbidden
		}
		if err := sr.Apply(event); err != nil {
			return err
		}
		responded = sr

		if event == domain.EventReject {
			return repos.ServiceRequests().DeleteServiceRequest(ctx, sr.ID)
		}

		technicianID := sr.Estimate.TechnicianID
		sr.TechnicianID = &technicianID
		return repos.ServiceRequests().UpdateServiceRequest(ctx, sr)
	})
	if err != nil {
		return nil, wrapErr(err, "estimate service: failed to %s estimate for request %d", strings.ToLower(string(action)), requestID)
	}

	recordTransition(domain.StatusEstimated, responded.Status)
	s.logger.Info("estimate answered",
		zap.Int64("request_id", requestID),
		zap.String("action", string(action)),
	)

	typ := domain.NotificationEstimateAccepted
	message := fmt.Sprintf("Estimate for service request #%d was accepted", requestID)
	if event == domain.EventReject {
		typ = domain.NotificationEstimateRejected
		message = fmt.Sprintf("Estimate for service request #%d was rejected", requestID)
	}
	if feedback = strings.TrimSpace(feedback); feedback != "" {
		message += ": " + feedback
	}
	notify(ctx, s.notifier, typ, responded.Estimate.TechnicianID, requestID, message)

	return responded, nil
}
