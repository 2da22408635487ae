package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/brisabank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
)

// ClientService implements client registration and resolution over the
// client repository.
type ClientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(repo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{clientRepo: repo}
}

// CreateClient registers a new client with immutable identity fields.
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	birthDate, err := time.Parse(dto.BirthDateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth date must be in %s format", apperrors.ErrValidation, dto.BirthDateLayout)
	}

	// Tax id is the natural key clients are resolved by; keep it unique.
	existing, err := s.clientRepo.FindClientByTaxID(ctx, req.TaxID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check tax id uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tax id %s already registered", apperrors.ErrDuplicate, req.TaxID)
	}

	now := time.Now()
	client := domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		TaxID:     req.TaxID,
		BirthDate: birthDate,
		Address:   req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client in repository", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, err
	}

	logger.Info("Client registered", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a client by its unique identifier.
func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client by ID", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

// GetClientByTaxID resolves a client by national tax id.
func (s *ClientService) GetClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	client, err := s.clientRepo.FindClientByTaxID(ctx, taxID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client by tax id", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *ClientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}
