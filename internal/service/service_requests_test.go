package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	domainmocks "github.com/avc/repairhub/internal/domain/mocks"
	"github.com/avc/repairhub/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	customer   = domain.Actor{UserID: 100, Role: domain.RoleCustomer}
	stranger   = domain.Actor{UserID: 101, Role: domain.RoleCustomer}
	technician = domain.Actor{UserID: 200, Role: domain.RoleTechnician}
	otherTech  = domain.Actor{UserID: 201, Role: domain.RoleTechnician}
	admin      = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

const walletMethodID = int64(1)

type fixture struct {
	store     *memory.Store
	notifier  *domainmocks.NotifierMock
	requests  *ServiceRequestService
	estimates *EstimateService
	reports   *ReportService
	reviews   *ReviewService
	coupons   *CouponService
	wallets   *WalletService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := func() time.Time { return testNow }
	store := memory.NewStore(memory.WithClock(clock))
	notifier := domainmocks.NewNotifierMock(t)
	logger := zap.NewNop()

	f := &fixture{
		store:     store,
		notifier:  notifier,
		requests:  NewServiceRequestService(store, notifier, logger),
		estimates: NewEstimateService(store, notifier, logger),
		reports:   NewReportService(store, notifier, logger),
		reviews:   NewReviewService(store, notifier, logger),
		coupons:   NewCouponService(store, logger),
		wallets:   NewWalletService(store, logger),
	}
	f.requests.now = clock
	f.estimates.now = clock
	f.reports.now = clock
	f.reviews.now = clock
	f.coupons.now = clock
	f.wallets.now = clock

	return f
}

// allowNotifications разрешает любые уведомления, когда тест их не проверяет
func (f *fixture) allowNotifications() {
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()
}

func requestInput(coupon string) domain.ServiceRequestInput {
	return domain.ServiceRequestInput{
		Item: domain.Item{
			Name:             "Laptop",
			Condition:        "Used",
			IssueDescription: "Screen flickers after boot",
		},
		RequestedServiceDate: testNow.AddDate(0, 0, 3),
		PaymentMethodID:      walletMethodID,
		CouponCode:           coupon,
	}
}

func (f *fixture) createRequest(t *testing.T, coupon string) *domain.ServiceRequest {
	t.Helper()
	sr, err := f.requests.Create(context.Background(), customer, requestInput(coupon))
	require.NoError(t, err)
	return sr
}

func (f *fixture) submitEstimate(t *testing.T, requestID, cost int64) {
	t.Helper()
	_, err := f.estimates.CreateEstimate(context.Background(), technician, requestID, domain.EstimateInput{
		Cost:           cost,
		CompletionDate: testNow.AddDate(0, 0, 5),
		Notes:          "replace display cable",
	})
	require.NoError(t, err)
}

// startedRequest проводит заявку до IN_PROGRESS
func (f *fixture) startedRequest(t *testing.T, coupon string, cost int64) *domain.ServiceRequest {
	t.Helper()
	ctx := context.Background()

	sr := f.createRequest(t, coupon)
	f.submitEstimate(t, sr.ID, cost)

	_, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionAccept, "")
	require.NoError(t, err)

	sr, err = f.requests.StartWork(ctx, technician, sr.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, sr.Status)

	return sr
}

func (f *fixture) deposit(t *testing.T, actor domain.Actor, amount int64) {
	t.Helper()
	_, err := f.wallets.Deposit(context.Background(), actor, amount, "top up")
	require.NoError(t, err)
}

func (f *fixture) createCoupon(t *testing.T, code string, discount float64, maxUsage int) {
	t.Helper()
	_, err := f.coupons.CreateCoupon(context.Background(), admin, &domain.Coupon{
		Code:          code,
		DiscountValue: discount,
		MaxUsage:      maxUsage,
		ExpiryDate:    testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
}

func TestServiceRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success without coupon", func(t *testing.T) {
		f := newFixture(t)

		sr, err := f.requests.Create(ctx, customer, requestInput(""))
		require.NoError(t, err)
		assert.NotZero(t, sr.ID)
		assert.Equal(t, domain.StatusPending, sr.Status)
		assert.Equal(t, customer.UserID, sr.CustomerID)
		assert.Nil(t, sr.CouponCode)
		assert.Nil(t, sr.TechnicianID)
		assert.Nil(t, sr.FinalCost)
	})

	t.Run("Success with coupon", func(t *testing.T) {
		f := newFixture(t)
		f.createCoupon(t, "SPRING20", 0.2, 5)

		sr, err := f.requests.Create(ctx, customer, requestInput(" SPRING20 "))
		require.NoError(t, err)
		require.NotNil(t, sr.CouponCode)
		assert.Equal(t, "SPRING20", *sr.CouponCode)
		assert.Equal(t, 0.2, sr.Coupon.DiscountValue)

		c, err := f.coupons.Validate(ctx, customer, "SPRING20")
		require.NoError(t, err)
		assert.Equal(t, 1, c.UsageCount)
	})

	t.Run("Expired coupon leaves no request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.coupons.CreateCoupon(ctx, admin, &domain.Coupon{
			Code:          "OLD",
			DiscountValue: 0.5,
			MaxUsage:      1,
			ExpiryDate:    testNow.Add(-time.Hour),
		})
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, customer, requestInput("OLD"))
		assert.ErrorIs(t, err, domain.ErrExpired)

		list, err := f.requests.ListForCustomer(ctx, customer)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Unknown payment method does not consume coupon", func(t *testing.T) {
		f := newFixture(t)
		f.createCoupon(t, "ONCE", 0.1, 1)

		in := requestInput("ONCE")
		in.PaymentMethodID = 42

		_, err := f.requests.Create(ctx, customer, in)
		assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)

		c, err := f.coupons.Validate(ctx, customer, "ONCE")
		require.NoError(t, err)
		assert.Equal(t, 0, c.UsageCount)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newFixture(t)

		in := requestInput("")
		in.Item.Name = "X"
		_, err := f.requests.Create(ctx, customer, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		in = requestInput("")
		in.RequestedServiceDate = testNow
		_, err = f.requests.Create(ctx, customer, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Technician cannot create", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.requests.Create(ctx, technician, requestInput(""))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestServiceRequestService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sr := f.createRequest(t, "")

	t.Run("Owner", func(t *testing.T) {
		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, sr.ID, got.ID)
	})

	t.Run("Any technician while pending", func(t *testing.T) {
		_, err := f.requests.Get(ctx, otherTech, sr.ID)
		assert.NoError(t, err)
	})

	t.Run("Another customer", func(t *testing.T) {
		_, err := f.requests.Get(ctx, stranger, sr.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := f.requests.Get(ctx, customer, 9999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServiceRequestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update pending request", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		in := requestInput("")
		in.Item.Name = "Gaming laptop"
		updated, err := f.requests.Update(ctx, customer, sr.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Gaming laptop", updated.Item.Name)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gaming laptop", got.Item.Name)
	})

	t.Run("Coupon cannot be changed", func(t *testing.T) {
		f := newFixture(t)
		f.createCoupon(t, "SPRING20", 0.2, 5)
		sr := f.createRequest(t, "")

		_, err := f.requests.Update(ctx, customer, sr.ID, requestInput("SPRING20"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Locked after estimate", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.createRequest(t, "")
		f.submitEstimate(t, sr.ID, 200000)

		_, err := f.requests.Update(ctx, customer, sr.ID, requestInput(""))
		assert.ErrorIs(t, err, domain.ErrLocked)

		err = f.requests.Delete(ctx, customer, sr.ID)
		assert.ErrorIs(t, err, domain.ErrLocked)
	})

	t.Run("Only owner", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		_, err := f.requests.Update(ctx, stranger, sr.ID, requestInput(""))
		assert.ErrorIs(t, err, domain.ErrForbidden)

		err = f.requests.Delete(ctx, stranger, sr.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Delete pending request", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		require.NoError(t, f.requests.Delete(ctx, customer, sr.ID))

		_, err := f.requests.Get(ctx, customer, sr.ID)
		assert.ErrorIs(t, err, domain.ErrServiceRequestNotFound)
	})
}

func TestServiceRequestService_ListForTechnician(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.allowNotifications()

	open := f.createRequest(t, "")
	estimated := f.createRequest(t, "")
	f.submitEstimate(t, estimated.ID, 50000)

	list, err := f.requests.ListForTechnician(ctx, technician, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.requests.ListForTechnician(ctx, otherTech, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, open.ID, list[0].ID)

	list, err = f.requests.ListForTechnician(ctx, technician, domain.StatusEstimated)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, estimated.ID, list[0].ID)

	_, err = f.requests.ListForTechnician(ctx, technician, "DONE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.requests.ListForTechnician(ctx, customer, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestServiceRequestService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts one service payment", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.deposit(t, customer, 500000)
		sr := f.startedRequest(t, "", 200000)

		done, err := f.requests.Complete(ctx, technician, sr.ID, 150000)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, done.Status)
		require.NotNil(t, done.FinalCost)
		assert.Equal(t, int64(150000), *done.FinalCost)

		txs, err := f.wallets.ListTransactions(ctx, customer)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, domain.TransactionTypeServicePayment, txs[0].Type)
		assert.Equal(t, int64(150000), txs[0].Amount)
		assert.Equal(t, fmt.Sprintf("Payment for service request #%d", sr.ID), txs[0].Description)

		w, err := f.wallets.GetWallet(ctx, customer)
		require.NoError(t, err)
		assert.Equal(t, int64(350000), w.Balance)
	})

	t.Run("Applies coupon discount at settlement", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.createCoupon(t, "SPRING20", 0.2, 5)
		f.deposit(t, customer, 500000)
		sr := f.startedRequest(t, "SPRING20", 100000)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), *got.DisplayCost())

		done, err := f.requests.Complete(ctx, technician, sr.ID, 100000)
		require.NoError(t, err)
		assert.Equal(t, int64(80000), *done.FinalCost)

		w, err := f.wallets.GetWallet(ctx, customer)
		require.NoError(t, err)
		assert.Equal(t, int64(420000), w.Balance)
	})

	t.Run("Full discount posts nothing", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.createCoupon(t, "FREE", 1, 1)
		sr := f.startedRequest(t, "FREE", 100000)

		done, err := f.requests.Complete(ctx, technician, sr.ID, 100000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), *done.FinalCost)

		txs, err := f.wallets.ListTransactions(ctx, customer)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("Insufficient funds keeps request in progress", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.deposit(t, customer, 1000)
		sr := f.startedRequest(t, "", 200000)

		_, err := f.requests.Complete(ctx, technician, sr.ID, 150000)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, got.Status)
		assert.Nil(t, got.FinalCost)

		w, err := f.wallets.GetWallet(ctx, customer)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), w.Balance)
	})

	t.Run("Non-positive price", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.requests.Complete(ctx, technician, 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Only assigned technician", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.deposit(t, customer, 500000)
		sr := f.startedRequest(t, "", 200000)

		_, err := f.requests.Complete(ctx, otherTech, sr.ID, 150000)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Failed completion creates no wallet", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.startedRequest(t, "", 200000)

		_, err := f.requests.Complete(ctx, otherTech, sr.ID, 150000)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.store.Wallets().GetWalletByOwner(ctx, customer.UserID)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)

		// Без кошелька баланс нулевой, заявка остается в работе
		_, err = f.requests.Complete(ctx, technician, sr.ID, 150000)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		_, err = f.store.Wallets().GetWalletByOwner(ctx, customer.UserID)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)

		pending := f.createRequest(t, "")
		_, err = f.requests.Complete(ctx, technician, pending.ID, 150000)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		_, err = f.store.Wallets().GetWalletByOwner(ctx, customer.UserID)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, got.Status)
	})

	t.Run("Not in progress", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.createRequest(t, "")
		f.submitEstimate(t, sr.ID, 1000)
		_, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionAccept, "")
		require.NoError(t, err)

		_, err = f.requests.Complete(ctx, technician, sr.ID, 1000)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Concurrent completion settles once", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		f.deposit(t, customer, 500000)
		sr := f.startedRequest(t, "", 200000)

		const workers = 10
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.requests.Complete(ctx, technician, sr.ID, 100000)
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, domain.ErrInvalidState)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)

		w, err := f.wallets.GetWallet(ctx, customer)
		require.NoError(t, err)
		assert.Equal(t, int64(400000), w.Balance)
	})
}

func TestServiceRequestService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.allowNotifications()
	f.deposit(t, customer, 500000)

	sr := f.createRequest(t, "")
	f.submitEstimate(t, sr.ID, 100000)
	_, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionAccept, "")
	require.NoError(t, err)

	_, err = f.requests.AdvanceStatus(ctx, technician, sr.ID, domain.StatusEstimated, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	got, err := f.requests.AdvanceStatus(ctx, technician, sr.ID, domain.StatusInProgress, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)

	_, err = f.requests.AdvanceStatus(ctx, technician, sr.ID, domain.StatusCompleted, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	price := int64(90000)
	got, err = f.requests.AdvanceStatus(ctx, technician, sr.ID, domain.StatusCompleted, &price)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestServiceRequestService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := domainmocks.NewStoreMock(t)
	repo := domainmocks.NewServiceRequestRepositoryMock(t)
	svc := NewServiceRequestService(store, nil, zap.NewNop())

	store.EXPECT().ServiceRequests().Return(repo)
	repo.EXPECT().GetServiceRequest(mock.Anything, int64(7)).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.Get(ctx, customer, 7)
	require.Error(t, err)
	assert.False(t, domain.IsDomainError(err))
	assert.Contains(t, err.Error(), "service request service: failed to get request 7")
}
