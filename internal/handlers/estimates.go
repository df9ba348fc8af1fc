package handlers

import (
	"net/http"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

type EstimatesHandler struct {
	service domain.EstimateService
	logger  *zap.Logger
}

func NewEstimatesHandler(service domain.EstimateService, logger *zap.Logger) *EstimatesHandler {
	return &EstimatesHandler{
		service: service,
		logger:  logger,
	}
}

type estimateRequest struct {
	Cost           int64  `json:"cost"`
	CompletionDate string `json:"completionDate"`
	Notes          string `json:"notes"`
}

func (h *EstimatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req estimateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	date, err := parseDate(req.CompletionDate)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	e, err := h.service.CreateEstimate(r.Context(), actor, id, domain.EstimateInput{
		Cost:           req.Cost,
		CompletionDate: date,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, e)
}

type estimateResponseRequest struct {
	Action   domain.EstimateAction `json:"action"`
	Feedback string                `json:"feedback"`
}

// Respond принимает или отклоняет оценку. При отклонении заявка удаляется.
func (h *EstimatesHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req estimateResponseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sr, err := h.service.RespondToEstimate(r.Context(), actor, id, req.Action, req.Feedback)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if sr.Status == domain.StatusRejected {
		writeMessage(w, http.StatusOK, "estimate rejected, service request deleted")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newServiceRequestView(sr))
}
