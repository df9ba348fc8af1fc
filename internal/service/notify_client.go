package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/repairhub/internal/domain"
)

// WebhookSender реализует domain.NotificationSender: отправляет уведомление
// POST-запросом с JSON-телом на настроенный адрес.
type WebhookSender struct {
	url        string
	httpClient *http.Client
}

// NewWebhookSender создает новый WebhookSender
func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send доставляет одно уведомление.
// Ответ 429 возвращается как *RateLimitError с задержкой из Retry-After.
func (c *WebhookSender) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notify client: failed to encode notification %s: %w", n.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", n.ID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusTooManyRequests:
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		return fmt.Errorf("notify client: unexpected status code: %d", resp.StatusCode)
	}
}
