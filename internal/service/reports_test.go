package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportInput() domain.ReportInput {
	return domain.ReportInput{
		RepairDetails:     "Replaced the display cable and reseated the panel",
		ResolutionSummary: "Screen works",
		CompletionDate:    testNow,
	}
}

func (f *fixture) completedRequest(t *testing.T) *domain.ServiceRequest {
	t.Helper()
	f.deposit(t, customer, 500000)
	sr := f.startedRequest(t, "", 100000)

	sr, err := f.requests.Complete(context.Background(), technician, sr.ID, 100000)
	require.NoError(t, err)
	return sr
}

func TestReportService_CreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Second report fails and first is kept", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		first, err := f.reports.CreateReport(ctx, technician, sr.ID, reportInput())
		require.NoError(t, err)
		assert.NotZero(t, first.ID)

		in := reportInput()
		in.ResolutionSummary = "Overwritten"
		_, err = f.reports.CreateReport(ctx, technician, sr.ID, in)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		got, err := f.reports.GetReport(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "Screen works", got.ResolutionSummary)

		stored, err := f.requests.Get(ctx, customer, sr.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, stored.Status)
	})

	t.Run("Request not completed", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.startedRequest(t, "", 1000)

		_, err := f.reports.CreateReport(ctx, technician, sr.ID, reportInput())
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Completion date rules", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		in := reportInput()
		in.CompletionDate = testNow.Add(time.Hour)
		_, err := f.reports.CreateReport(ctx, technician, sr.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		in.CompletionDate = testNow.AddDate(0, 0, -1)
		_, err = f.reports.CreateReport(ctx, technician, sr.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		in = reportInput()
		in.RepairDetails = "too short"
		_, err = f.reports.CreateReport(ctx, technician, sr.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Only assigned technician", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		sr := f.completedRequest(t)

		_, err := f.reports.CreateReport(ctx, otherTech, sr.ID, reportInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestReportService_GetAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.allowNotifications()
	sr := f.completedRequest(t)

	_, err := f.reports.GetReport(ctx, customer, sr.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	_, err = f.reports.CreateReport(ctx, technician, sr.ID, reportInput())
	require.NoError(t, err)

	_, err = f.reports.GetReport(ctx, stranger, sr.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := f.reports.ListReports(ctx, technician)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sr.ID, list[0].ServiceRequestID)

	list, err = f.reports.ListReports(ctx, otherTech)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.reports.ListReports(ctx, customer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
