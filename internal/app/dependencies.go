package app

import (
	"github.com/avc/repairhub/internal/config"
	"github.com/avc/repairhub/internal/domain"
	"github.com/avc/repairhub/internal/handlers"
	"github.com/avc/repairhub/internal/service"
	"github.com/avc/repairhub/internal/utils/jwt"
	"github.com/avc/repairhub/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	serviceRequests domain.ServiceRequestService
	estimates       domain.EstimateService
	reports         domain.ReportService
	reviews         domain.ReviewService
	coupons         domain.CouponService
	wallet          domain.WalletService
	paymentMethods  domain.PaymentMethodService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	serviceRequests *handlers.ServiceRequestsHandler
	estimates       *handlers.EstimatesHandler
	reports         *handlers.ReportsHandler
	reviews         *handlers.ReviewsHandler
	coupons         *handlers.CouponsHandler
	wallet          *handlers.WalletHandler
	paymentMethods  *handlers.PaymentMethodsHandler
	health          *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// newNotificationSender выбирает способ доставки уведомлений
func newNotificationSender(cfg *config.Config, logger *zap.Logger) domain.NotificationSender {
	if cfg.NotifyWebhookURL == "" {
		return service.NewLogSender(logger)
	}
	return service.NewWebhookSender(cfg.NotifyWebhookURL)
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, store domain.Store, logger *zap.Logger) *dependencies {
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Пул воркеров служит диспетчером уведомлений для сервисов
	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, newNotificationSender(cfg, logger), logger)

	svcs := &services{
		serviceRequests: service.NewServiceRequestService(store, workerPool, logger),
		estimates:       service.NewEstimateService(store, workerPool, logger),
		reports:         service.NewReportService(store, workerPool, logger),
		reviews:         service.NewReviewService(store, workerPool, logger),
		coupons:         service.NewCouponService(store, logger),
		wallet:          service.NewWalletService(store, logger),
		paymentMethods:  service.NewPaymentMethodService(store, logger),
	}

	hdlrs := &handlerSet{
		serviceRequests: handlers.NewServiceRequestsHandler(svcs.serviceRequests, logger),
		estimates:       handlers.NewEstimatesHandler(svcs.estimates, logger),
		reports:         handlers.NewReportsHandler(svcs.reports, logger),
		reviews:         handlers.NewReviewsHandler(svcs.reviews, logger),
		coupons:         handlers.NewCouponsHandler(svcs.coupons, logger),
		wallet:          handlers.NewWalletHandler(svcs.wallet, logger),
		paymentMethods:  handlers.NewPaymentMethodsHandler(svcs.paymentMethods, logger),
		health:          handlers.NewHealthHandler(store, logger),
	}

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
