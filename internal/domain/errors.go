package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок движка. Конкретные ошибки ниже оборачивают один из видов,
// поэтому вызывающий код проверяет их через errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidInput      = errors.New("invalid input")
	ErrExpired           = errors.New("expired")
	ErrExhaustedUsage    = errors.New("usage limit reached")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyExists     = errors.New("already exists")
	ErrLocked            = errors.New("locked")
	ErrForbidden         = errors.New("forbidden")
)

// Ошибки заявок
var (
	ErrServiceRequestNotFound = fmt.Errorf("service request %w", ErrNotFound)
	ErrServiceRequestLocked   = fmt.Errorf("service request is %w: only PENDING or REJECTED requests can be changed", ErrLocked)
	ErrEstimateExists         = fmt.Errorf("estimate %w", ErrAlreadyExists)
	ErrEstimateNotFound       = fmt.Errorf("estimate %w", ErrNotFound)
	ErrReportExists           = fmt.Errorf("report %w", ErrAlreadyExists)
	ErrReportNotFound         = fmt.Errorf("report %w", ErrNotFound)
)

// Ошибки отзывов
var (
	ErrReviewNotFound = fmt.Errorf("review %w", ErrNotFound)
	ErrReviewExists   = fmt.Errorf("review for this service request %w", ErrAlreadyExists)
)

// Ошибки купонов
var (
	ErrCouponNotFound  = fmt.Errorf("coupon %w", ErrNotFound)
	ErrCouponExists    = fmt.Errorf("coupon %w", ErrAlreadyExists)
	ErrCouponExpired   = fmt.Errorf("coupon has %w", ErrExpired)
	ErrCouponExhausted = fmt.Errorf("coupon %w", ErrExhaustedUsage)
)

// Ошибки кошелька и справочников
var (
	ErrWalletNotFound        = fmt.Errorf("wallet %w", ErrNotFound)
	ErrInvalidAmount         = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrPaymentMethodNotFound = fmt.Errorf("payment method %w", ErrNotFound)
)

// InvalidInputf создает ошибку некорректного ввода с пояснением
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// InvalidStatef создает ошибку недопустимого состояния с пояснением
func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

var kinds = []error{
	ErrNotFound, ErrInvalidState, ErrInvalidInput, ErrExpired, ErrExhaustedUsage,
	ErrInsufficientFunds, ErrAlreadyExists, ErrLocked, ErrForbidden,
}

// IsDomainError сообщает, относится ли ошибка к одному из видов ошибок движка.
// Остальные ошибки считаются инфраструктурными.
func IsDomainError(err error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
