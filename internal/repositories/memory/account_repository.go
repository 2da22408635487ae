// Package memory holds the process-resident repositories. Accounts live in
// an arena keyed by their sequential number; clients reference them by
// number only. Durable storage is out of scope for this system, so the
// arena is the single source of truth for the process lifetime.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// accountEntry pairs an account with its own mutex. WithAccount holds this
// mutex for the whole mutation, making deposit/withdraw a single atomic
// critical section per account.
type accountEntry struct {
	mu  sync.Mutex
	acc *domain.Account
}

// AccountRepository is the in-memory account arena.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*accountEntry
	order    []int64
	next     int64
}

// NewAccountRepository creates an empty arena. Account numbers start at 1.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]*accountEntry),
		next:     1,
	}
}

// CreateAccount stores the account under the next sequential number and
// returns a snapshot carrying that number. The arena keeps its own copy;
// the caller's value is not aliased.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := account.Snapshot()
	live.Number = r.next
	r.next++

	r.accounts[live.Number] = &accountEntry{acc: live}
	r.order = append(r.order, live.Number)
	return live.Snapshot(), nil
}

// FindAccountByNumber returns a snapshot of the account.
func (r *AccountRepository) FindAccountByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	entry, err := r.entry(number)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.acc.Snapshot(), nil
}

// ListAccounts returns snapshots in creation order.
func (r *AccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	r.mu.RLock()
	numbers := make([]int64, len(r.order))
	copy(numbers, r.order)
	r.mu.RUnlock()

	if offset >= len(numbers) {
		return []domain.Account{}, nil
	}
	numbers = numbers[offset:]
	if limit > 0 && limit < len(numbers) {
		numbers = numbers[:limit]
	}

	out := make([]domain.Account, 0, len(numbers))
	for _, n := range numbers {
		acc, err := r.FindAccountByNumber(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, *acc)
	}
	return out, nil
}

// ListAccountsByOwner returns snapshots of all accounts owned by one client.
func (r *AccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	r.mu.RLock()
	numbers := make([]int64, len(r.order))
	copy(numbers, r.order)
	r.mu.RUnlock()

	out := []domain.Account{}
	for _, n := range numbers {
		acc, err := r.FindAccountByNumber(ctx, n)
		if err != nil {
			return nil, err
		}
		if acc.OwnerID == ownerID {
			out = append(out, *acc)
		}
	}
	return out, nil
}

// WithAccount runs fn against the live account record under its mutex.
func (r *AccountRepository) WithAccount(ctx context.Context, number int64, fn func(*domain.Account) error) error {
	entry, err := r.entry(number)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.acc)
}

func (r *AccountRepository) entry(number int64) (*accountEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, number)
	}
	return entry, nil
}
