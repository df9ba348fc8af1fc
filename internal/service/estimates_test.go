package service

import (
	"context"
	"strings"
	"testing"

	"github.com/avc/repairhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEstimateService_CreateEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success notifies customer", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationEstimateSubmitted &&
				n.RecipientID == customer.UserID &&
				n.ServiceRequestID == sr.ID
		})).Once()

		e, err := f.estimates.CreateEstimate(ctx, technician, sr.ID, domain.EstimateInput{
			Cost:           200000,
			CompletionDate: testNow.AddDate(0, 0, 5),
			Notes:          " new battery ",
		})
		require.NoError(t, err)
		assert.NotZero(t, e.ID)
		assert.Equal(t, technician.UserID, e.TechnicianID)
		assert.Equal(t, "new battery", e.Notes)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEstimated, got.Status)
		require.NotNil(t, got.Estimate)
		assert.Equal(t, int64(200000), got.Estimate.Cost)
		assert.Nil(t, got.TechnicianID)
	})

	t.Run("Only one estimate per request", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.createRequest(t, "")
		f.submitEstimate(t, sr.ID, 1000)

		_, err := f.estimates.CreateEstimate(ctx, otherTech, sr.ID, domain.EstimateInput{
			Cost:           900,
			CompletionDate: testNow.AddDate(0, 0, 2),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		_, err := f.estimates.CreateEstimate(ctx, technician, sr.ID, domain.EstimateInput{
			Cost:           0,
			CompletionDate: testNow.AddDate(0, 0, 5),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.estimates.CreateEstimate(ctx, technician, sr.ID, domain.EstimateInput{
			Cost:           1000,
			CompletionDate: testNow,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Customer cannot estimate", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		_, err := f.estimates.CreateEstimate(ctx, customer, sr.ID, domain.EstimateInput{
			Cost:           1000,
			CompletionDate: testNow.AddDate(0, 0, 5),
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Request not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.estimates.CreateEstimate(ctx, technician, 404, domain.EstimateInput{
			Cost:           1000,
			CompletionDate: testNow.AddDate(0, 0, 5),
		})
		assert.ErrorIs(t, err, domain.ErrServiceRequestNotFound)
	})
}

func TestEstimateService_RespondToEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("Accept assigns technician", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.createRequest(t, "")
		f.submitEstimate(t, sr.ID, 1000)

		got, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionAccept, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, got.Status)
		require.NotNil(t, got.TechnicianID)
		assert.Equal(t, technician.UserID, *got.TechnicianID)

		stored, err := f.requests.Get(ctx, technician, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, stored.Status)
	})

	t.Run("Reject deletes request and keeps coupon used", func(t *testing.T) {
		f := newFixture(t)
		f.createCoupon(t, "ONCE", 0.1, 1)
		sr := f.createRequest(t, "ONCE")

		f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationEstimateSubmitted
		})).Once()
		f.submitEstimate(t, sr.ID, 200000)

		f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationEstimateRejected &&
				n.RecipientID == technician.UserID &&
				strings.HasSuffix(n.Message, ": too expensive")
		})).Once()

		got, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionReject, " too expensive ")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, got.Status)

		_, err = f.requests.Get(ctx, customer, sr.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = f.coupons.Validate(ctx, customer, "ONCE")
		assert.ErrorIs(t, err, domain.ErrExhaustedUsage)
	})

	t.Run("Pending request", func(t *testing.T) {
		f := newFixture(t)
		sr := f.createRequest(t, "")

		_, err := f.estimates.RespondToEstimate(ctx, customer, sr.ID, domain.EstimateActionAccept, "")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Unknown action", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.estimates.RespondToEstimate(ctx, customer, 1, "MAYBE", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Only owner", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.createRequest(t, "")
		f.submitEstimate(t, sr.ID, 1000)

		_, err := f.estimates.RespondToEstimate(ctx, stranger, sr.ID, domain.EstimateActionReject, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)

		got, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEstimated, got.Status)
	})
}
