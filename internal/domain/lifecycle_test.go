package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusNext(t *testing.T) {
	allEvents := []Event{EventSubmitEstimate, EventAccept, EventReject, EventStartWork, EventComplete, EventFileReport}
	allowed := map[ServiceRequestStatus]map[Event]ServiceRequestStatus{
		StatusPending:    {EventSubmitEstimate: StatusEstimated},
		StatusEstimated:  {EventAccept: StatusAccepted, EventReject: StatusRejected},
		StatusAccepted:   {EventStartWork: StatusInProgress},
		StatusInProgress: {EventComplete: StatusCompleted},
		StatusCompleted:  {EventFileReport: StatusCompleted},
		StatusRejected:   {},
	}

	for status, events := range allowed {
		for _, e := range allEvents {
			next, err := status.Next(e)
			if want, ok := events[e]; ok {
				require.NoError(t, err, "%s + %s", status, e)
				assert.Equal(t, want, next)
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidState, "%s + %s", status, e)
			assert.Equal(t, status, next)
		}
	}
}

func TestStatusModifiable(t *testing.T) {
	assert.True(t, StatusPending.Modifiable())
	assert.True(t, StatusRejected.Modifiable())
	for _, s := range []ServiceRequestStatus{StatusEstimated, StatusAccepted, StatusInProgress, StatusCompleted} {
		assert.False(t, s.Modifiable(), s)
	}
}

func TestServiceRequestApply(t *testing.T) {
	t.Run("Full happy path", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusPending}

		require.NoError(t, sr.Apply(EventSubmitEstimate))
		sr.Estimate = &Estimate{Cost: 100000}
		require.NoError(t, sr.Apply(EventAccept))
		require.NoError(t, sr.Apply(EventStartWork))
		require.NoError(t, sr.Apply(EventComplete))
		require.NoError(t, sr.Apply(EventFileReport))

		assert.Equal(t, StatusCompleted, sr.Status)
	})

	t.Run("Second estimate", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusPending, Estimate: &Estimate{Cost: 1}}

		assert.ErrorIs(t, sr.Apply(EventSubmitEstimate), ErrAlreadyExists)
		assert.Equal(t, StatusPending, sr.Status)
	})

	t.Run("Accept without estimate", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusEstimated}

		assert.ErrorIs(t, sr.Apply(EventAccept), ErrNotFound)
		assert.Equal(t, StatusEstimated, sr.Status)
	})

	t.Run("Second report", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusCompleted, Report: &Report{ID: 1}}

		assert.ErrorIs(t, sr.Apply(EventFileReport), ErrReportExists)
	})

	t.Run("Report before completion", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusInProgress}

		assert.ErrorIs(t, sr.Apply(EventFileReport), ErrInvalidState)
		assert.Equal(t, StatusInProgress, sr.Status)
	})

	t.Run("Rejected is terminal", func(t *testing.T) {
		sr := &ServiceRequest{Status: StatusRejected, Estimate: &Estimate{Cost: 1}}

		assert.ErrorIs(t, sr.Apply(EventAccept), ErrInvalidState)
	})
}
