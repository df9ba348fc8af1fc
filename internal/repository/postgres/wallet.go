package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/repairhub/internal/domain"
	"github.com/jackc/pgx/v5"
)

// WalletRepository реализует domain.WalletRepository
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository создает новый WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// EnsureWallet возвращает кошелек владельца, создавая пустой при первом обращении
func (r *WalletRepository) EnsureWallet(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO wallets (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create wallet for owner %d: %w", ownerID, err)
	}

	return r.GetWalletByOwner(ctx, ownerID)
}

// GetWalletByOwner получает кошелек владельца
func (r *WalletRepository) GetWalletByOwner(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT id, owner_id, balance, created_at FROM wallets WHERE owner_id = $1`, ownerID)
}

// GetWalletByOwnerForUpdate получает кошелек и блокирует его до конца транзакции.
// Проверка баланса и запись операции выполняются под этой блокировкой.
func (r *WalletRepository) GetWalletByOwnerForUpdate(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	return r.get(ctx, `SELECT id, owner_id, balance, created_at FROM wallets WHERE owner_id = $1 FOR UPDATE`, ownerID)
}

func (r *WalletRepository) get(ctx context.Context, query string, ownerID int64) (*domain.Wallet, error) {
	w := &domain.Wallet{}

	err := r.db.QueryRow(ctx, query, ownerID).Scan(&w.ID, &w.OwnerID, &w.Balance, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("repository: failed to get wallet for owner %d: %w", ownerID, err)
	}

	return w, nil
}

// AppendTransaction добавляет запись в журнал и сохраняет новый баланс кошелька.
// Баланс в w уже пересчитан вызывающим кодом (domain.Wallet.Post).
func (r *WalletRepository) AppendTransaction(ctx context.Context, w *domain.Wallet, t *domain.Transaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO wallet_transactions (wallet_id, type, amount, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		w.ID, t.Type, t.Amount, t.Description, t.Timestamp,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to insert transaction for wallet %d: %w", w.ID, err)
	}

	_, err = r.db.Exec(ctx, `UPDATE wallets SET balance = $2 WHERE id = $1`, w.ID, w.Balance)
	if err != nil {
		if hasCode(err, pgCheckViolation) {
			return domain.ErrInsufficientFunds
		}
		return fmt.Errorf("repository: failed to update balance for wallet %d: %w", w.ID, err)
	}

	t.WalletID = w.ID
	return nil
}

// ListTransactions возвращает журнал кошелька, новые операции первыми
func (r *WalletRepository) ListTransactions(ctx context.Context, walletID int64) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, wallet_id, type, amount, description, created_at
		 FROM wallet_transactions
		 WHERE wallet_id = $1
		 ORDER BY created_at DESC, id DESC`,
		walletID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list transactions for wallet %d: %w", walletID, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t := &domain.Transaction{}
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
