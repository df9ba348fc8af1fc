package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/avc/repairhub/internal/metrics"
	"github.com/avc/repairhub/internal/service"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = time.Second
	// Retry-After задает внешний сервер, ожидание ограничено
	defaultMaxRetryDelay = 5 * time.Second
)

// Pool представляет пул воркеров для доставки уведомлений.
// Реализует domain.Notifier: Notify только ставит уведомление в очередь.
type Pool struct {
	workers     int
	queue       chan domain.Notification
	sender      domain.NotificationSender
	logger      *zap.Logger
	wg          sync.WaitGroup
	maxAttempts int
	maxDelay    time.Duration

	mu     sync.RWMutex
	closed bool
}

// NewPool создает новый worker pool
func NewPool(workers int, queueSize int, sender domain.NotificationSender, logger *zap.Logger) *Pool {
	return &Pool{
		workers:     workers,
		queue:       make(chan domain.Notification, queueSize),
		sender:      sender,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		maxDelay:    defaultMaxRetryDelay,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop закрывает очередь и ждет, пока воркеры доставят оставшиеся уведомления
func (p *Pool) Stop() {
	p.close()
	p.wg.Wait()
}

// Shutdown закрывает очередь и ждет воркеров не дольше, чем позволяет ctx.
// При истечении ctx воркеры продолжают работу до отмены их контекста.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.close()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.queue)
	}
}

// Notify ставит уведомление в очередь без ожидания.
// Если очередь заполнена или пул остановлен, уведомление отбрасывается.
func (p *Pool) Notify(_ context.Context, n domain.Notification) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.drop(n, "pool is stopped")
		return
	}

	select {
	case p.queue <- n:
		metrics.NotificationQueueDepth.Set(float64(len(p.queue)))
	default:
		p.drop(n, "queue is full")
	}
}

func (p *Pool) drop(n domain.Notification, reason string) {
	metrics.Notifications.WithLabelValues(metrics.ResultDropped).Inc()
	p.logger.Warn("notification dropped",
		zap.String("reason", reason),
		zap.String("id", n.ID),
		zap.String("type", string(n.Type)),
		zap.Int64("service_request_id", n.ServiceRequestID),
	)
}

// worker доставляет уведомления из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case n, ok := <-p.queue:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(p.queue)))
			p.deliver(ctx, n)
		}
	}
}

// deliver отправляет одно уведомление. Ответ rate limit повторяется после задержки,
// остальные ошибки только логируются.
func (p *Pool) deliver(ctx context.Context, n domain.Notification) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err := p.sender.Send(ctx, n)
		if err == nil {
			metrics.Notifications.WithLabelValues(metrics.ResultOK).Inc()
			p.logger.Debug("notification sent", zap.String("id", n.ID), zap.String("type", string(n.Type)))
			return
		}

		var rateLimitErr *service.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			metrics.Notifications.WithLabelValues(metrics.ResultFailed).Inc()
			p.logger.Error("failed to send notification",
				zap.String("id", n.ID),
				zap.Int64("recipient_id", n.RecipientID),
				zap.Error(err),
			)
			return
		}

		delay := rateLimitErr.RetryAfter
		if delay <= 0 {
			delay = defaultRetryDelay
		}
		if delay > p.maxDelay {
			delay = p.maxDelay
		}
		p.logger.Warn("rate limit exceeded",
			zap.String("id", n.ID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_after", delay),
		)

		select {
		case <-ctx.Done():
			metrics.Notifications.WithLabelValues(metrics.ResultFailed).Inc()
			return
		case <-time.After(delay):
		}
	}

	metrics.Notifications.WithLabelValues(metrics.ResultFailed).Inc()
	p.logger.Error("notification not delivered after retries",
		zap.String("id", n.ID),
		zap.Int("attempts", p.maxAttempts),
	)
}
