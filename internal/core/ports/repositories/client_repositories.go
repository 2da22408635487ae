package repositories

import (
	"context"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByTaxID retrieves a client by its national tax id.
	FindClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients in registration order.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// AddAccountNumber registers a newly opened account with its owning client.
	// The account-number set only ever grows.
	AddAccountNumber(ctx context.Context, clientID string, accountNumber int64) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
