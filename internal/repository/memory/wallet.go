package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/avc/repairhub/internal/domain"
)

type wallets struct {
	repos
}

func walletKey(ownerID int64) string {
	return fmt.Sprintf("wallet:%d", ownerID)
}

// EnsureWallet создает кошелек сразу, даже внутри транзакции: пустой кошелек
// не меняет ни одного баланса.
func (r *wallets) EnsureWallet(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	created := &domain.Wallet{OwnerID: ownerID, CreatedAt: r.store.now()}
	err := r.store.apply(func(next *state) error {
		if _, ok := next.wallets[ownerID]; ok {
			return nil
		}
		created.ID = r.store.nextID()
		w := *created
		next.wallets[ownerID] = &w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetWalletByOwner(ctx, ownerID)
}

func (r *wallets) GetWalletByOwner(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var w *domain.Wallet
	r.store.read(func(st *state) {
		if cur, ok := st.wallets[ownerID]; ok {
			v := *cur
			w = &v
		}
	})
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}
	return w, nil
}

// GetWalletByOwnerForUpdate блокирует кошелек владельца до конца транзакции
func (r *wallets) GetWalletByOwnerForUpdate(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	if err := r.lock(ctx, walletKey(ownerID)); err != nil {
		return nil, err
	}
	return r.GetWalletByOwner(ctx, ownerID)
}

// AppendTransaction добавляет запись в журнал и сохраняет баланс из w
func (r *wallets) AppendTransaction(ctx context.Context, w *domain.Wallet, t *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.ID = r.store.nextID()
	t.WalletID = w.ID
	entry := *t
	ownerID, balance := w.OwnerID, w.Balance

	return r.write(func(next *state) error {
		cur, ok := next.wallets[ownerID]
		if !ok || cur.ID != entry.WalletID {
			return domain.ErrWalletNotFound
		}
		if balance < 0 {
			return domain.ErrInsufficientFunds
		}

		upd := *cur
		upd.Balance = balance
		next.wallets[ownerID] = &upd
		next.transactions[entry.WalletID] = append(slices.Clip(next.transactions[entry.WalletID]), &entry)
		return nil
	})
}

// ListTransactions возвращает журнал кошелька, новые операции первыми
func (r *wallets) ListTransactions(ctx context.Context, walletID int64) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := make([]*domain.Transaction, 0)
	r.store.read(func(st *state) {
		log := st.transactions[walletID]
		for i := len(log) - 1; i >= 0; i-- {
			v := *log[i]
			list = append(list, &v)
		}
	})

	return list, nil
}
