package handlers

import (
	"net/http"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CouponsHandler struct {
	service domain.CouponService
	logger  *zap.Logger
}

func NewCouponsHandler(service domain.CouponService, logger *zap.Logger) *CouponsHandler {
	return &CouponsHandler{
		service: service,
		logger:  logger,
	}
}

type couponRequest struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
	MaxUsage      int     `json:"maxUsage"`
	ExpiryDate    string  `json:"expiryDate"`
}

func (req couponRequest) coupon() (*domain.Coupon, error) {
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	// Купон с датой без времени действует до конца этого дня
	if len(req.ExpiryDate) == len(dateLayout) {
		expiry = expiry.Add(24*time.Hour - time.Nanosecond)
	}
	return &domain.Coupon{
		Code:          req.Code,
		DiscountValue: req.DiscountValue,
		MaxUsage:      req.MaxUsage,
		ExpiryDate:    expiry,
	}, nil
}

// Validate проверяет купон без погашения
func (h *CouponsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	c, err := h.service.Validate(r.Context(), actor, chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, c)
}

// Use проверяет купон перед созданием заявки и возвращает данные для привязки.
// Клиент вызывает его перед POST /service-requests/customer с тем же couponCode,
// а использование расходуется при создании заявки, поэтому здесь счетчик не меняется.
func (h *CouponsHandler) Use(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	c, err := h.service.Validate(r.Context(), actor, chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, c.Snapshot())
}

// Redeem погашает одно использование купона вне создания заявки
func (h *CouponsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.ValidateAndUse(r.Context(), actor, chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, snapshot)
}

func (h *CouponsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req couponRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.coupon()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	c, err := h.service.CreateCoupon(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, c)
}

func (h *CouponsHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListCoupons(r.Context(), actor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

func (h *CouponsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req couponRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.coupon()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	c, err := h.service.UpdateCoupon(r.Context(), actor, chi.URLParam(r, "code"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, c)
}

func (h *CouponsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCoupon(r.Context(), actor, chi.URLParam(r, "code")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
