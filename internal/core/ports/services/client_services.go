package services

import (
	"context"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	"github.com/brisabank/bank_ledger_app/internal/dto"
)

// ClientSvcFacade exposes client registration and resolution.
type ClientSvcFacade interface {
	// CreateClient registers a new client. Registering a tax id twice fails
	// with apperrors.ErrDuplicate.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// GetClientByID retrieves a client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// GetClientByTaxID resolves a client by national tax id, the lookup the
	// collaborator layers use at the operation boundary.
	GetClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}
