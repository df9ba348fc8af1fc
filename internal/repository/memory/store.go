package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avc/repairhub/internal/domain"
)

// state - зафиксированные данные хранилища. Сущности внутри не изменяются на месте:
// каждая запись заменяет значение в карте, поэтому поверхностной копии карт достаточно.
type state struct {
	requests     map[int64]*domain.ServiceRequest
	coupons      map[string]*domain.Coupon
	wallets      map[int64]*domain.Wallet // по owner_id
	transactions map[int64][]*domain.Transaction
	methods      map[int64]*domain.PaymentMethod
	reviews      map[int64]*domain.Review
}

func newState() *state {
	return &state{
		requests:     make(map[int64]*domain.ServiceRequest),
		coupons:      make(map[string]*domain.Coupon),
		wallets:      make(map[int64]*domain.Wallet),
		transactions: make(map[int64][]*domain.Transaction),
		methods:      make(map[int64]*domain.PaymentMethod),
		reviews:      make(map[int64]*domain.Review),
	}
}

func (s *state) clone() *state {
	return &state{
		requests:     maps.Clone(s.requests),
		coupons:      maps.Clone(s.coupons),
		wallets:      maps.Clone(s.wallets),
		transactions: maps.Clone(s.transactions),
		methods:      maps.Clone(s.methods),
		reviews:      maps.Clone(s.reviews),
	}
}

// op - отложенная запись. Выполняется при фиксации над копией состояния.
type op func(next *state) error

// Store реализует domain.Store в памяти процесса.
// Методы *ForUpdate внутри WithinTx захватывают блокировку ключа сущности до конца транзакции,
// записи копятся и применяются все вместе только при успешном завершении fn.
type Store struct {
	mu    sync.RWMutex
	data  *state
	locks *keyedMutex
	seq   atomic.Int64
	now   func() time.Time
}

// Option настраивает Store
type Option func(*Store)

// WithClock подменяет источник времени для полей created_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore создает пустое хранилище со способом оплаты по умолчанию
func NewStore(opts ...Option) *Store {
	s := &Store{
		data:  newState(),
		locks: newKeyedMutex(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	id := s.nextID()
	s.data.methods[id] = &domain.PaymentMethod{ID: id, Name: "Wallet", Provider: "repairhub"}

	return s
}

func (s *Store) nextID() int64 {
	return s.seq.Add(1)
}

func (s *Store) ServiceRequests() domain.ServiceRequestRepository {
	return &serviceRequests{repos{store: s}}
}

func (s *Store) Coupons() domain.CouponRepository {
	return &coupons{repos{store: s}}
}

func (s *Store) Wallets() domain.WalletRepository {
	return &wallets{repos{store: s}}
}

func (s *Store) PaymentMethods() domain.PaymentMethodRepository {
	return &paymentMethods{repos{store: s}}
}

func (s *Store) Reviews() domain.ReviewRepository {
	return &reviews{repos{store: s}}
}

// WithinTx выполняет fn как одну атомарную единицу.
// Блокировки ключей держатся до возврата; при ошибке отложенные записи отбрасываются.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	t := &tx{store: s, held: make(map[string]struct{})}
	defer t.release()

	if err := fn(ctx, txRepositories{t}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return s.apply(t.ops...)
}

// Ping всегда успешен: хранилище в памяти процесса
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// apply применяет записи к копии состояния и публикует ее, только если все записи успешны
func (s *Store) apply(ops ...op) error {
	if len(ops) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	for _, o := range ops {
		if err := o(next); err != nil {
			return err
		}
	}
	s.data = next

	return nil
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// tx копит записи и удерживаемые блокировки одной транзакции
type tx struct {
	store *Store
	ops   []op
	held  map[string]struct{}
	order []string
}

func (t *tx) lock(ctx context.Context, key string) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	if err := t.store.locks.Lock(ctx, key); err != nil {
		return fmt.Errorf("repository: failed to lock %s: %w", key, err)
	}
	t.held[key] = struct{}{}
	t.order = append(t.order, key)
	return nil
}

func (t *tx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.Unlock(t.order[i])
	}
	t.order = nil
	t.held = nil
}

type txRepositories struct {
	t *tx
}

func (r txRepositories) ServiceRequests() domain.ServiceRequestRepository {
	return &serviceRequests{repos{store: r.t.store, tx: r.t}}
}

func (r txRepositories) Coupons() domain.CouponRepository {
	return &coupons{repos{store: r.t.store, tx: r.t}}
}

func (r txRepositories) Wallets() domain.WalletRepository {
	return &wallets{repos{store: r.t.store, tx: r.t}}
}

func (r txRepositories) PaymentMethods() domain.PaymentMethodRepository {
	return &paymentMethods{repos{store: r.t.store, tx: r.t}}
}

func (r txRepositories) Reviews() domain.ReviewRepository {
	return &reviews{repos{store: r.t.store, tx: r.t}}
}

// repos - общая часть репозиториев: вне транзакции запись применяется сразу
type repos struct {
	store *Store
	tx    *tx
}

func (r repos) write(o op) error {
	if r.tx == nil {
		return r.store.apply(o)
	}
	r.tx.ops = append(r.tx.ops, o)
	return nil
}

func (r repos) lock(ctx context.Context, key string) error {
	if r.tx == nil {
		return ctx.Err()
	}
	return r.tx.lock(ctx, key)
}
