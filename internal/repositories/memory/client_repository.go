package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// ClientRepository is the in-memory client store with a tax-id index.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	byTaxID map[string]string // taxID -> clientID
	order   []string
}

// NewClientRepository creates an empty client store.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[string]*domain.Client),
		byTaxID: make(map[string]string),
	}
}

// SaveClient persists a new client. Both the client id and the tax id must
// be unused.
func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.ClientID]; exists {
		return fmt.Errorf("%w: client %s", apperrors.ErrDuplicate, client.ClientID)
	}
	if _, exists := r.byTaxID[client.TaxID]; exists {
		return fmt.Errorf("%w: tax id %s", apperrors.ErrDuplicate, client.TaxID)
	}

	stored := cloneClient(&client)
	r.clients[client.ClientID] = stored
	r.byTaxID[client.TaxID] = client.ClientID
	r.order = append(r.order, client.ClientID)
	return nil
}

// FindClientByID returns a copy of the client.
func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return cloneClient(client), nil
}

// FindClientByTaxID returns a copy of the client registered under taxID.
func (r *ClientRepository) FindClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clientID, ok := r.byTaxID[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: tax id %s", apperrors.ErrNotFound, taxID)
	}
	return cloneClient(r.clients[clientID]), nil
}

// ListClients returns copies in registration order.
func (r *ClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.order) {
		return []domain.Client{}, nil
	}
	ids := r.order[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	out := make([]domain.Client, 0, len(ids))
	for _, id := range ids {
		out = append(out, *cloneClient(r.clients[id]))
	}
	return out, nil
}

// AddAccountNumber appends a newly opened account to the client's set.
func (r *ClientRepository) AddAccountNumber(ctx context.Context, clientID string, accountNumber int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[clientID]
	if !ok {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	client.AccountNumbers = append(client.AccountNumbers, accountNumber)
	return nil
}

func cloneClient(c *domain.Client) *domain.Client {
	cp := *c
	cp.AccountNumbers = make([]int64, len(c.AccountNumbers))
	copy(cp.AccountNumbers, c.AccountNumbers)
	return &cp
}
