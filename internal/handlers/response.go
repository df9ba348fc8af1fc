package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// messageResponse - тело ответа об ошибке. Клиенты читают поле message.
type messageResponse struct {
	Message string `json:"message"`
}

// statusFor сопоставляет вид ошибки движка с HTTP статусом
var statusFor = []struct {
	kind   error
	status int
}{
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrLocked, http.StatusLocked},
	{domain.ErrInvalidState, http.StatusConflict},
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrExpired, http.StatusGone},
	{domain.ErrExhaustedUsage, http.StatusConflict},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrAlreadyExists, http.StatusConflict},
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: message})
}

// writeError отвечает статусом по виду ошибки. Ошибки инфраструктуры логируются
// и не раскрываются клиенту.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	for _, m := range statusFor {
		if errors.Is(err, m.kind) {
			writeMessage(w, m.status, err.Error())
			return
		}
	}

	requestID, _ := r.Context().Value(RequestIDKey).(string)
	logger.Error("request failed",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
}

// requireActor возвращает актора или отвечает 401
func requireActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
	return actor, ok
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// parseDate принимает дату в виде 2006-01-02 или RFC 3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.InvalidInputf("invalid date %q", value)
	}
	return t, nil
}
