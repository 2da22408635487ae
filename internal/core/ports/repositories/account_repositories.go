package repositories

import (
	"context"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data. Implementations
// return snapshots; mutating a returned account has no effect on stored state.
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its sequential number.
	FindAccountByNumber(ctx context.Context, number int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts in creation order.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByOwner retrieves all accounts owned by one client, in creation order.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// CreateAccount persists a new account, assigning it the next sequential
	// account number. The returned account carries the assigned number.
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// WithAccount runs fn against the live account record inside that
	// account's critical section. Every balance mutation must go through
	// here so deposits and withdrawals stay atomic under concurrent callers.
	// If fn returns an error it is passed through unchanged.
	WithAccount(ctx context.Context, number int64, fn func(*domain.Account) error) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
