package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avc/repairhub/internal/domain"
	domainmocks "github.com/avc/repairhub/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reviewInput(requestID int64) domain.ReviewInput {
	return domain.ReviewInput{ServiceRequestID: requestID, Rating: 5, Comment: "  Fixed in a day  "}
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer reviews completed request", func(t *testing.T) {
		f := newFixture(t)
		// Ожидание уведомления об отзыве регистрируется раньше общего
		f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationReviewPosted && n.RecipientID == technician.UserID
		})).Once()
		f.allowNotifications()
		sr := f.completedRequest(t)

		rv, err := f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
		require.NoError(t, err)
		assert.NotZero(t, rv.ID)
		assert.Equal(t, technician.UserID, rv.TechnicianID)
		assert.Equal(t, customer.UserID, rv.CustomerID)
		assert.Equal(t, "Fixed in a day", rv.Comment)
		assert.Equal(t, testNow, rv.CreatedAt)
	})

	t.Run("One review per request", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		_, err := f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
		require.NoError(t, err)

		_, err = f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
		assert.ErrorIs(t, err, domain.ErrReviewExists)
	})

	t.Run("Request not completed", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.startedRequest(t, "", 100000)

		_, err := f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Only the owner", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		_, err := f.reviews.CreateReview(ctx, stranger, reviewInput(sr.ID))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.reviews.CreateReview(ctx, technician, reviewInput(sr.ID))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Technician must match request", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		in := reviewInput(sr.ID)
		in.TechnicianID = otherTech.UserID
		_, err := f.reviews.CreateReview(ctx, customer, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Invalid rating", func(t *testing.T) {
		f := newFixture(t)

		in := reviewInput(1)
		in.Rating = 6
		_, err := f.reviews.CreateReview(ctx, customer, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Concurrent reviews create one", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, domain.ErrReviewExists)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		list, err := f.reviews.ListForTechnician(ctx, customer, technician.UserID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.allowNotifications()
	sr := f.completedRequest(t)

	rv, err := f.reviews.CreateReview(ctx, customer, reviewInput(sr.ID))
	require.NoError(t, err)

	t.Run("Author edits", func(t *testing.T) {
		updated, err := f.reviews.UpdateReview(ctx, customer, rv.ID, domain.ReviewInput{Rating: 3, Comment: "Screen flickers again"})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Rating)

		got, err := f.reviews.GetReview(ctx, technician, rv.ID)
		require.NoError(t, err)
		assert.Equal(t, "Screen flickers again", got.Comment)
		assert.Equal(t, technician.UserID, got.TechnicianID)
	})

	t.Run("Other customer cannot edit", func(t *testing.T) {
		_, err := f.reviews.UpdateReview(ctx, stranger, rv.ID, domain.ReviewInput{Rating: 1, Comment: "x"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Cannot move to another technician", func(t *testing.T) {
		_, err := f.reviews.UpdateReview(ctx, customer, rv.ID, domain.ReviewInput{TechnicianID: otherTech.UserID, Rating: 1, Comment: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Other customer cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, f.reviews.DeleteReview(ctx, stranger, rv.ID), domain.ErrForbidden)
		assert.ErrorIs(t, f.reviews.DeleteReview(ctx, technician, rv.ID), domain.ErrForbidden)
	})

	t.Run("Admin deletes", func(t *testing.T) {
		require.NoError(t, f.reviews.DeleteReview(ctx, admin, rv.ID))

		_, err := f.reviews.GetReview(ctx, customer, rv.ID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)

		mine, err := f.reviews.ListMine(ctx, customer)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})
}

func TestReviewService_Lists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.reviews.ListForTechnician(ctx, customer, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.reviews.ListMine(ctx, technician)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := f.reviews.ListForTechnician(ctx, customer, technician.UserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := domainmocks.NewStoreMock(t)
	repo := domainmocks.NewReviewRepositoryMock(t)
	svc := NewReviewService(store, nil, zap.NewNop())

	store.EXPECT().Reviews().Return(repo)
	repo.EXPECT().ListReviewsByTechnician(mock.Anything, technician.UserID).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.ListForTechnician(ctx, customer, technician.UserID)
	require.Error(t, err)
	assert.False(t, domain.IsDomainError(err))
	assert.Contains(t, err.Error(), "review service: failed to list reviews for technician 200")
}
