package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/repairhub/internal/domain"
	domainmocks "github.com/avc/repairhub/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewsHandler(t *testing.T) {
	mockService := domainmocks.NewReviewServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewReviewsHandler(mockService, logger)

	t.Run("Create", func(t *testing.T) {
		in := domain.ReviewInput{ServiceRequestID: 4, TechnicianID: 2, Rating: 5, Comment: "Great job"}
		mockService.EXPECT().CreateReview(mock.Anything, customer, in).
			Return(&domain.Review{ID: 9, ServiceRequestID: 4, CustomerID: 1, TechnicianID: 2, Rating: 5, Comment: "Great job"}, nil).Once()

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/reviews",
			`{"serviceRequestId":4,"technicianId":2,"rating":5,"comment":"Great job"}`, &customer))

		require.Equal(t, http.StatusCreated, w.Code)
		var got domain.Review
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, 5, got.Rating)
	})

	t.Run("Create without request", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/reviews", `{"rating":5,"comment":"x"}`, &customer))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "serviceRequestId is required", decodeMessage(t, w))
	})

	t.Run("Create on open request", func(t *testing.T) {
		mockService.EXPECT().CreateReview(mock.Anything, customer, mock.Anything).
			Return(nil, domain.InvalidStatef("only completed requests can be reviewed")).Once()

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/reviews", `{"serviceRequestId":5,"rating":4,"comment":"ok"}`, &customer))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Get missing", func(t *testing.T) {
		mockService.EXPECT().GetReview(mock.Anything, technician, int64(7)).Return(nil, domain.ErrReviewNotFound).Once()

		w := httptest.NewRecorder()
		handler.Get(w, newRequest(http.MethodGet, "/reviews/7", "", &technician, "id", "7"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update by another customer", func(t *testing.T) {
		mockService.EXPECT().UpdateReview(mock.Anything, customer, int64(9), domain.ReviewInput{Rating: 2, Comment: "meh"}).
			Return(nil, domain.ErrForbidden).Once()

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPut, "/reviews/9", `{"rating":2,"comment":"meh"}`, &customer, "id", "9"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteReview(mock.Anything, admin, int64(9)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/reviews/9", "", &admin, "id", "9"))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("List for technician", func(t *testing.T) {
		mockService.EXPECT().ListForTechnician(mock.Anything, customer, int64(2)).
			Return([]*domain.Review{{ID: 9, Rating: 5}, {ID: 8, Rating: 3}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListForTechnician(w, newRequest(http.MethodGet, "/reviews/technicians/2", "", &customer, "id", "2"))

		require.Equal(t, http.StatusOK, w.Code)
		var list []domain.Review
		require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
		assert.Len(t, list, 2)
	})

	t.Run("Bad technician id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListForTechnician(w, newRequest(http.MethodGet, "/reviews/technicians/abc", "", &customer, "id", "abc"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List mine", func(t *testing.T) {
		mockService.EXPECT().ListMine(mock.Anything, customer).Return([]*domain.Review{}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListMine(w, newRequest(http.MethodGet, "/reviews", "", &customer))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
