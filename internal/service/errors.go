package service

import (
	"fmt"
	"time"

	"github.com/avc/repairhub/internal/domain"
)

// wrapErr не оборачивает ошибки движка, чтобы вызывающий код видел их текст как есть.
// Инфраструктурные ошибки дополняются контекстом операции.
func wrapErr(err error, format string, args ...any) error {
	if err == nil || domain.IsDomainError(err) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// RateLimitError представляет ответ 429 от получателя уведомлений
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}
