package service

import (
	"context"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notify передает уведомление диспетчеру после фиксации операции.
// Notify не блокирует, а ошибки доставки не влияют на результат операции.
func notify(ctx context.Context, n domain.Notifier, typ domain.NotificationType, recipientID, requestID int64, message string) {
	if n == nil {
		return
	}
	n.Notify(ctx, domain.Notification{
		ID:               uuid.NewString(),
		Type:             typ,
		RecipientID:      recipientID,
		ServiceRequestID: requestID,
		Message:          message,
		CreatedAt:        time.Now(),
	})
}

// LogSender пишет уведомления в лог. Используется, когда webhook не настроен.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender создает новый LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send записывает уведомление в лог
func (s *LogSender) Send(_ context.Context, n domain.Notification) error {
	s.logger.Info("notification",
		zap.String("id", n.ID),
		zap.String("type", string(n.Type)),
		zap.Int64("recipient_id", n.RecipientID),
		zap.Int64("service_request_id", n.ServiceRequestID),
		zap.String("message", n.Message),
	)
	return nil
}
