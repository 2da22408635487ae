package services

import (
	"context"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	"github.com/brisabank/bank_ledger_app/internal/dto"
)

// AccountSvcFacade exposes account creation and read-only account views.
type AccountSvcFacade interface {
	// OpenAccount creates an account for the given client, assigning the next
	// sequential account number and registering it with the owner.
	OpenAccount(ctx context.Context, clientID string, req dto.OpenAccountRequest) (*domain.Account, error)

	// GetAccount retrieves an account snapshot by number.
	GetAccount(ctx context.Context, number int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of account snapshots.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByClient retrieves the client's accounts. A client with no
	// accounts fails with apperrors.ErrNoAccountsForClient.
	ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error)

	// ListAccountSummaries retrieves the read-only listing view (branch,
	// number, owner name, owner tax id) for all accounts.
	ListAccountSummaries(ctx context.Context, limit int, offset int) ([]domain.AccountSummary, error)
}
