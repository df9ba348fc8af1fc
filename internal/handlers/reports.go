package handlers

import (
	"net/http"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

type ReportsHandler struct {
	service domain.ReportService
	logger  *zap.Logger
}

func NewReportsHandler(service domain.ReportService, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{
		service: service,
		logger:  logger,
	}
}

type reportRequest struct {
	ServiceRequestID  int64  `json:"serviceRequestId"`
	RepairDetails     string `json:"repairDetails"`
	ResolutionSummary string `json:"resolutionSummary"`
	CompletionDate    string `json:"completionDate"`
}

func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ServiceRequestID <= 0 {
		writeMessage(w, http.StatusBadRequest, "serviceRequestId is required")
		return
	}
	date, err := parseDate(req.CompletionDate)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	report, err := h.service.CreateReport(r.Context(), actor, req.ServiceRequestID, domain.ReportInput{
		RepairDetails:     req.RepairDetails,
		ResolutionSummary: req.ResolutionSummary,
		CompletionDate:    date,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, report)
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListReports(r.Context(), actor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

func (h *ReportsHandler) GetByRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	report, err := h.service.GetReport(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, report)
}
