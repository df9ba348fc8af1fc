package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookSender_Send(t *testing.T) {
	ctx := context.Background()
	n := domain.Notification{
		ID:               "n-1",
		Type:             domain.NotificationEstimateRejected,
		RecipientID:      3,
		ServiceRequestID: 10,
		Message:          "too expensive",
		CreatedAt:        time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "n-1", r.Header.Get("Idempotency-Key"))

			var got domain.Notification
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, domain.NotificationEstimateRejected, got.Type)
			assert.Equal(t, "too expensive", got.Message)

			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		require.NoError(t, NewWebhookSender(server.URL).Send(ctx, n))
	})

	t.Run("Rate limit exceeded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		err := NewWebhookSender(server.URL).Send(ctx, n)
		require.Error(t, err)

		var rateLimitErr *RateLimitError
		require.True(t, errors.As(err, &rateLimitErr))
		assert.Equal(t, 60*time.Second, rateLimitErr.RetryAfter)
	})

	t.Run("Server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := NewWebhookSender(server.URL).Send(ctx, n)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
	})

	t.Run("Connection error", func(t *testing.T) {
		err := NewWebhookSender("http://127.0.0.1:1").Send(ctx, n)
		assert.Error(t, err)
	})
}

func TestLogSender_Send(t *testing.T) {
	assert.NoError(t, NewLogSender(zap.NewNop()).Send(context.Background(), domain.Notification{ID: "x"}))
}
