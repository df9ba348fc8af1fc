package service

import (
	"context"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

// PaymentMethodService реализует domain.PaymentMethodService
type PaymentMethodService struct {
	store  domain.Store
	logger *zap.Logger
}

// NewPaymentMethodService создает новый PaymentMethodService
func NewPaymentMethodService(store domain.Store, logger *zap.Logger) *PaymentMethodService {
	return &PaymentMethodService{store: store, logger: logger}
}

func (s *PaymentMethodService) List(ctx context.Context, actor domain.Actor) ([]*domain.PaymentMethod, error) {
	list, err := s.store.PaymentMethods().ListPaymentMethods(ctx)
	if err != nil {
		return nil, wrapErr(err, "payment method service: failed to list payment methods")
	}
	return list, nil
}

func (s *PaymentMethodService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.PaymentMethod, error) {
	p, err := s.store.PaymentMethods().GetPaymentMethod(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "payment method service: failed to get payment method %d", id)
	}
	return p, nil
}

// Create добавляет способ оплаты (только администратор)
func (s *PaymentMethodService) Create(ctx context.Context, actor domain.Actor, p *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.PaymentMethods().CreatePaymentMethod(ctx, p); err != nil {
		return nil, wrapErr(err, "payment method service: failed to create payment method %q", p.Name)
	}

	s.logger.Info("payment method created", zap.Int64("payment_method_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Update меняет название и провайдера (только администратор)
func (s *PaymentMethodService) Update(ctx context.Context, actor domain.Actor, id int64, p *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	p.ID = id
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.PaymentMethods().UpdatePaymentMethod(ctx, p); err != nil {
		return nil, wrapErr(err, "payment method service: failed to update payment method %d", id)
	}
	return p, nil
}

// Delete удаляет способ оплаты, не используемый заявками (только администратор)
func (s *PaymentMethodService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.store.PaymentMethods().DeletePaymentMethod(ctx, id); err != nil {
		return wrapErr(err, "payment method service: failed to delete payment method %d", id)
	}
	return nil
}
