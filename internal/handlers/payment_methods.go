package handlers

import (
	"net/http"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

type PaymentMethodsHandler struct {
	service domain.PaymentMethodService
	logger  *zap.Logger
}

func NewPaymentMethodsHandler(service domain.PaymentMethodService, logger *zap.Logger) *PaymentMethodsHandler {
	return &PaymentMethodsHandler{
		service: service,
		logger:  logger,
	}
}

type paymentMethodRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func (h *PaymentMethodsHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

func (h *PaymentMethodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, p)
}

func (h *PaymentMethodsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req paymentMethodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Create(r.Context(), actor, &domain.PaymentMethod{Name: req.Name, Provider: req.Provider})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, p)
}

func (h *PaymentMethodsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req paymentMethodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Update(r.Context(), actor, id, &domain.PaymentMethod{Name: req.Name, Provider: req.Provider})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, p)
}

func (h *PaymentMethodsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
