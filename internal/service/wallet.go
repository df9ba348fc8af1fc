package service

import (
	"context"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/avc/repairhub/internal/metrics"
	"go.uber.org/zap"
)

// WalletService реализует domain.WalletService.
// Кошелек определяется по actor.UserID и создается при первом обращении.
type WalletService struct {
	store  domain.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewWalletService создает новый WalletService
func NewWalletService(store domain.Store, logger *zap.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// GetWallet возвращает кошелек владельца с текущим балансом
func (s *WalletService) GetWallet(ctx context.Context, actor domain.Actor) (*domain.Wallet, error) {
	w, err := s.store.Wallets().EnsureWallet(ctx, actor.UserID)
	if err != nil {
		return nil, wrapErr(err, "wallet service: failed to get wallet for user %d", actor.UserID)
	}
	return w, nil
}

// Deposit пополняет кошелек владельца
func (s *WalletService) Deposit(ctx context.Context, actor domain.Actor, amount int64, description string) (*domain.Transaction, error) {
	return s.post(ctx, actor.UserID, domain.TransactionTypeDeposit, amount, description)
}

// Withdraw списывает средства. Проверка баланса и запись выполняются под блокировкой кошелька.
func (s *WalletService) Withdraw(ctx context.Context, actor domain.Actor, amount int64, description string) (*domain.Transaction, error) {
	return s.post(ctx, actor.UserID, domain.TransactionTypeWithdrawal, amount, description)
}

// ListTransactions возвращает журнал кошелька владельца
func (s *WalletService) ListTransactions(ctx context.Context, actor domain.Actor) ([]*domain.Transaction, error) {
	w, err := s.GetWallet(ctx, actor)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.Wallets().ListTransactions(ctx, w.ID)
	if err != nil {
		return nil, wrapErr(err, "wallet service: failed to list transactions for wallet %d", w.ID)
	}
	return txs, nil
}

func (s *WalletService) post(ctx context.Context, ownerID int64, txType domain.TransactionType, amount int64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.store.Wallets().EnsureWallet(ctx, ownerID); err != nil {
		return nil, wrapErr(err, "wallet service: failed to get wallet for user %d", ownerID)
	}

	var posted *domain.Transaction
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		t, err := postTransaction(ctx, repos, ownerID, txType, amount, description, s.now())
		posted = t
		return err
	})
	if err != nil {
		return nil, wrapErr(err, "wallet service: failed to post %s of %d for user %d", txType, amount, ownerID)
	}

	metrics.WalletTransactions.WithLabelValues(string(txType)).Inc()
	s.logger.Info("wallet transaction posted",
		zap.Int64("wallet_id", posted.WalletID),
		zap.String("type", string(txType)),
		zap.Int64("amount", amount),
	)

	return posted, nil
}

// postTransaction блокирует кошелек владельца, проверяет баланс и добавляет запись.
// Вызывается только внутри WithinTx.
func postTransaction(
	ctx context.Context,
	repos domain.Repositories,
	ownerID int64,
	txType domain.TransactionType,
	amount int64,
	description string,
	now time.Time,
) (*domain.Transaction, error) {
	w, err := repos.Wallets().GetWalletByOwnerForUpdate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	t, err := w.Post(txType, amount, description, now)
	if err != nil {
		return nil, err
	}

	if err := repos.Wallets().AppendTransaction(ctx, w, t); err != nil {
		return nil, err
	}

	return t, nil
}
