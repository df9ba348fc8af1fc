package handlers

import (
	"net/http"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

// ServiceRequestsHandler обслуживает заявки: создание, чтение, изменение и смену статуса
type ServiceRequestsHandler struct {
	service domain.ServiceRequestService
	logger  *zap.Logger
}

func NewServiceRequestsHandler(service domain.ServiceRequestService, logger *zap.Logger) *ServiceRequestsHandler {
	return &ServiceRequestsHandler{
		service: service,
		logger:  logger,
	}
}

type serviceRequestRequest struct {
	Item                 domain.Item `json:"item"`
	RequestedServiceDate string      `json:"requestedServiceDate"`
	PaymentMethodID      int64       `json:"paymentMethodId"`
	CouponCode           string      `json:"couponCode"`
}

func (req serviceRequestRequest) input() (domain.ServiceRequestInput, error) {
	date, err := parseDate(req.RequestedServiceDate)
	if err != nil {
		return domain.ServiceRequestInput{}, err
	}
	return domain.ServiceRequestInput{
		Item:                 req.Item,
		RequestedServiceDate: date,
		PaymentMethodID:      req.PaymentMethodID,
		CouponCode:           req.CouponCode,
	}, nil
}

// serviceRequestView добавляет к заявке отображаемую стоимость.
// До завершения это стоимость оценки, после - итоговая сумма.
type serviceRequestView struct {
	*domain.ServiceRequest
	Cost           *int64 `json:"cost"`
	DiscountedCost *int64 `json:"discountedCost,omitempty"`
}

func newServiceRequestView(sr *domain.ServiceRequest) serviceRequestView {
	v := serviceRequestView{ServiceRequest: sr, Cost: sr.DisplayCost()}
	if sr.Status != domain.StatusCompleted {
		v.DiscountedCost = sr.DiscountPreview()
	}
	return v
}

func newServiceRequestViews(list []*domain.ServiceRequest) []serviceRequestView {
	views := make([]serviceRequestView, 0, len(list))
	for _, sr := range list {
		views = append(views, newServiceRequestView(sr))
	}
	return views
}

func (h *ServiceRequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req serviceRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	sr, err := h.service.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, newServiceRequestView(sr))
}

func (h *ServiceRequestsHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListForCustomer(r.Context(), actor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newServiceRequestViews(list))
}

func (h *ServiceRequestsHandler) ListForTechnician(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	status := domain.ServiceRequestStatus(r.URL.Query().Get("status"))
	list, err := h.service.ListForTechnician(r.Context(), actor, status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newServiceRequestViews(list))
}

func (h *ServiceRequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	sr, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newServiceRequestView(sr))
}

func (h *ServiceRequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req serviceRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	sr, err := h.service.Update(r.Context(), actor, id, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newServiceRequestView(sr))
}

func (h *ServiceRequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

type statusRequest struct {
	Status     domain.ServiceRequestStatus `json:"status"`
	FinalPrice *int64                      `json:"finalPrice"`
}

// AdvanceStatus переводит заявку в IN_PROGRESS или COMPLETED
func (h *ServiceRequestsHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sr, err := h.service.AdvanceStatus(r.Context(), actor, id, req.Status, req.FinalPrice)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newServiceRequestView(sr))
}
