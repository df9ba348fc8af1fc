// Package metrics содержит Prometheus-метрики сервиса.
// Коллекторы регистрируются в реестре по умолчанию и отдаются на /metrics.
package metrics

import (
	"github.com/avc/repairhub/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repairhub"

// HTTPRequests считает обработанные HTTP-запросы
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route pattern and status code.",
}, []string{"method", "route", "status"})

// HTTPDuration - длительность обработки HTTP-запросов
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route pattern.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// StatusTransitions считает переходы заявок между статусами
var StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "service_request",
	Name:      "transitions_total",
	Help:      "Committed service request status transitions.",
}, []string{"from", "to"})

// Settlements считает расчеты при завершении работ
var Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "service_request",
	Name:      "settlements_total",
	Help:      "Settlements at completion by outcome.",
}, []string{"result"})

// CouponRedemptions считает попытки погашения купонов
var CouponRedemptions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "coupon",
	Name:      "redemptions_total",
	Help:      "Coupon redemption attempts by outcome.",
}, []string{"result"})

// WalletTransactions считает записи, добавленные в журналы кошельков
var WalletTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "wallet",
	Name:      "transactions_total",
	Help:      "Ledger entries appended by transaction type.",
}, []string{"type"})

// Notifications считает уведомления по результату доставки
var Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "notifications",
	Name:      "total",
	Help:      "Out-of-band notifications by outcome (sent, failed, dropped).",
}, []string{"result"})

// NotificationQueueDepth - текущая длина очереди уведомлений
var NotificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "notifications",
	Name:      "queue_depth",
	Help:      "Notifications waiting in the worker pool queue.",
})

// Результаты для меток result
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
	ResultDropped  = "dropped"
)

// ErrorResult возвращает ResultOK для nil, ResultRejected для ошибок движка
// и ResultFailed для ошибок инфраструктуры
func ErrorResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case domain.IsDomainError(err):
		return ResultRejected
	default:
		return ResultFailed
	}
}
