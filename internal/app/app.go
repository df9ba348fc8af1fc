package app

import (
	"context"
	"net/http"

	"github.com/avc/repairhub/internal/config"
	"github.com/avc/repairhub/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App связывает хранилище, сервисы движка, диспетчер уведомлений и HTTP сервер
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает приложение по конфигурации.
// Без DATABASE_URI используется хранилище в памяти процесса.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, dbPool, err := initStore(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, store, logger)
	router := setupRouter(deps, deps.jwtManager, logger)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		server:     createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает диспетчер уведомлений и HTTP сервер и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started", zap.Int("workers", a.config.WorkerPoolSize))

	serveErr := a.runServer(ctx)
	a.shutdown(cancel)

	return serveErr
}
