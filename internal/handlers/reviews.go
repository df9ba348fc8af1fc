package handlers

import (
	"net/http"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

type ReviewsHandler struct {
	service domain.ReviewService
	logger  *zap.Logger
}

func NewReviewsHandler(service domain.ReviewService, logger *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		service: service,
		logger:  logger,
	}
}

type reviewRequest struct {
	ServiceRequestID int64  `json:"serviceRequestId"`
	TechnicianID     int64  `json:"technicianId"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
}

func (req reviewRequest) input() domain.ReviewInput {
	return domain.ReviewInput{
		ServiceRequestID: req.ServiceRequestID,
		TechnicianID:     req.TechnicianID,
		Rating:           req.Rating,
		Comment:          req.Comment,
	}
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ServiceRequestID <= 0 {
		writeMessage(w, http.StatusBadRequest, "serviceRequestId is required")
		return
	}

	review, err := h.service.CreateReview(r.Context(), actor, req.input())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, review)
}

// ListMine возвращает отзывы текущего клиента
func (h *ReviewsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

func (h *ReviewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReview(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, review)
}

func (h *ReviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), actor, id, req.input())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, review)
}

func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), actor, id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListForTechnician возвращает отзывы о технике
func (h *ReviewsHandler) ListForTechnician(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	list, err := h.service.ListForTechnician(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}
