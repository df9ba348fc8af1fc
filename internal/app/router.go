package app

import (
	"github.com/avc/repairhub/internal/handlers"
	"github.com/avc/repairhub/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, logger)
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.MetricsMiddleware())
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	h := deps.handlers

	// Служебные эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Route("/service-requests", func(r chi.Router) {
			r.Post("/customer", h.serviceRequests.Create)
			r.Get("/customer", h.serviceRequests.ListForCustomer)
			r.Put("/customer/{id}", h.serviceRequests.Update)
			r.Delete("/customer/{id}", h.serviceRequests.Delete)
			r.Get("/technician", h.serviceRequests.ListForTechnician)
			r.Get("/{id}", h.serviceRequests.Get)
			r.Put("/{id}/technician/status", h.serviceRequests.AdvanceStatus)
			r.Put("/{id}/estimate/response", h.estimates.Respond)
			r.Get("/{id}/report", h.reports.GetByRequest)
		})

		r.Post("/estimates/technician/service-requests/{id}", h.estimates.Create)

		r.Post("/reports/technician", h.reports.Create)
		r.Get("/reports/technician", h.reports.List)

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", h.reviews.Create)
			r.Get("/", h.reviews.ListMine)
			r.Get("/technicians/{id}", h.reviews.ListForTechnician)
			r.Get("/{id}", h.reviews.Get)
			r.Put("/{id}", h.reviews.Update)
			r.Delete("/{id}", h.reviews.Delete)
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Post("/admin", h.coupons.Create)
			r.Get("/admin", h.coupons.List)
			r.Put("/admin/{code}", h.coupons.Update)
			r.Delete("/admin/{code}", h.coupons.Delete)
			r.Put("/use/{code}", h.coupons.Use)
			r.Post("/redeem/{code}", h.coupons.Redeem)
			r.Get("/{code}", h.coupons.Validate)
		})

		r.Get("/api/wallets/me", h.wallet.GetWallet)
		r.Post("/api/wallets/deposit", h.wallet.Deposit)
		r.Post("/api/wallets/me/withdraw", h.wallet.Withdraw)
		r.Get("/api/transactions/me", h.wallet.ListTransactions)

		r.Route("/api/payment-methods", func(r chi.Router) {
			r.Get("/", h.paymentMethods.List)
			r.Post("/", h.paymentMethods.Create)
			r.Get("/{id}", h.paymentMethods.Get)
			r.Put("/{id}", h.paymentMethods.Update)
			r.Delete("/{id}", h.paymentMethods.Delete)
		})
	})
}
