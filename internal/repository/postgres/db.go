package postgres

import (
	"context"
	"fmt"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс пула соединений и транзакции pgx
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Pool - пул соединений, который умеет проверять доступность БД
type Pool interface {
	DBTX
	Ping(ctx context.Context) error
}

// repositories реализует domain.Repositories поверх пула или транзакции
type repositories struct {
	db DBTX
}

func (r repositories) ServiceRequests() domain.ServiceRequestRepository {
	return NewServiceRequestRepository(r.db)
}

func (r repositories) Coupons() domain.CouponRepository {
	return NewCouponRepository(r.db)
}

func (r repositories) Wallets() domain.WalletRepository {
	return NewWalletRepository(r.db)
}

func (r repositories) PaymentMethods() domain.PaymentMethodRepository {
	return NewPaymentMethodRepository(r.db)
}

func (r repositories) Reviews() domain.ReviewRepository {
	return NewReviewRepository(r.db)
}

// Store реализует domain.Store на PostgreSQL
type Store struct {
	repositories
	pool Pool
}

// NewStore создает новый Store
func NewStore(pool Pool) *Store {
	return &Store{
		repositories: repositories{db: pool},
		pool:         pool,
	}
}

// WithinTx выполняет fn в одной транзакции БД.
// Блокировки строк (SELECT ... FOR UPDATE) держатся до Commit или Rollback.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if err := fn(ctx, repositories{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}

// Ping проверяет соединение с БД
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
