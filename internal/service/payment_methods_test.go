package service

import (
	"context"
	"testing"

	"github.com/avc/repairhub/internal/domain"
	domainmocks "github.com/avc/repairhub/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentMethodService(t *testing.T) {
	ctx := context.Background()
	store := domainmocks.NewStoreMock(t)
	repo := domainmocks.NewPaymentMethodRepositoryMock(t)
	svc := NewPaymentMethodService(store, zap.NewNop())

	store.EXPECT().PaymentMethods().Return(repo).Maybe()

	t.Run("List for any role", func(t *testing.T) {
		methods := []*domain.PaymentMethod{{ID: 1, Name: "Wallet", Provider: "repairhub"}}
		repo.EXPECT().ListPaymentMethods(mock.Anything).Return(methods, nil).Once()

		got, err := svc.List(ctx, technician)
		require.NoError(t, err)
		assert.Equal(t, methods, got)
	})

	t.Run("Get not found", func(t *testing.T) {
		repo.EXPECT().GetPaymentMethod(mock.Anything, int64(5)).Return(nil, domain.ErrPaymentMethodNotFound).Once()

		_, err := svc.Get(ctx, customer, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Create", func(t *testing.T) {
		repo.EXPECT().CreatePaymentMethod(mock.Anything, mock.AnythingOfType("*domain.PaymentMethod")).
			Run(func(_ context.Context, p *domain.PaymentMethod) { p.ID = 2 }).
			Return(nil).Once()

		p, err := svc.Create(ctx, admin, &domain.PaymentMethod{Name: "Card", Provider: "bank"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)
	})

	t.Run("Create requires admin", func(t *testing.T) {
		_, err := svc.Create(ctx, customer, &domain.PaymentMethod{Name: "Card", Provider: "bank"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Update validates", func(t *testing.T) {
		_, err := svc.Update(ctx, admin, 2, &domain.PaymentMethod{Name: "", Provider: "bank"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Delete in use", func(t *testing.T) {
		repo.EXPECT().DeletePaymentMethod(mock.Anything, int64(1)).
			Return(domain.InvalidStatef("payment method 1 is used by service requests")).Once()

		err := svc.Delete(ctx, admin, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
