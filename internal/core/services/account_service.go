package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/brisabank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
	"github.com/brisabank/bank_ledger_app/internal/utils/money"
)

// AccountDefaults carries the branch-wide account parameters loaded from
// configuration.
type AccountDefaults struct {
	Branch         string
	CheckingLimit  decimal.Decimal
	MaxWithdrawals int
}

// AccountService implements account creation and the read-only account views.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
	defaults    AccountDefaults
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, defaults AccountDefaults) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		defaults:    defaults,
	}
}

// OpenAccount creates an account for the given client. The repository
// assigns the next sequential number, and the number is registered with the
// owning client so the client's account set stays an index, not a pointer.
func (s *AccountService) OpenAccount(ctx context.Context, clientID string, req dto.OpenAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve client for account opening", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}

	policy, err := s.buildPolicy(req)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(s.defaults.Branch, client.ClientID, policy, time.Now())
	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to create account in repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.clientRepo.AddAccountNumber(ctx, client.ClientID, created.Number); err != nil {
		logger.Error("Failed to register account with client", slog.String("error", err.Error()), slog.Int64("account_number", created.Number))
		return nil, err
	}

	logger.Info("Account opened", slog.Int64("account_number", created.Number), slog.String("client_id", client.ClientID))
	return created, nil
}

// buildPolicy derives the account policy from the request, falling back to
// the configured checking defaults.
func (s *AccountService) buildPolicy(req dto.OpenAccountRequest) (domain.AccountPolicy, error) {
	if req.Type == string(domain.Standard) {
		return domain.StandardPolicy(), nil
	}

	limit := s.defaults.CheckingLimit
	if req.Limit != nil {
		parsed, err := money.ParseAmount(*req.Limit)
		if err != nil {
			return domain.AccountPolicy{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		limit = parsed
	}

	maxWithdrawals := s.defaults.MaxWithdrawals
	if req.MaxWithdrawals != nil {
		maxWithdrawals = *req.MaxWithdrawals
	}

	return domain.CheckingPolicy(limit, maxWithdrawals), nil
}

// GetAccount retrieves an account snapshot by number.
func (s *AccountService) GetAccount(ctx context.Context, number int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.Int64("account_number", number))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of account snapshots.
func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ListAccountsByClient retrieves the client's accounts, surfacing the
// "no account to operate on" condition as ErrNoAccountsForClient.
func (s *AccountService) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, clientID)
	if err != nil {
		logger.Error("Failed to list client accounts", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNoAccountsForClient, clientID)
	}
	return accounts, nil
}

// ListAccountSummaries retrieves the read-only listing view, joining each
// account with its owner's display fields.
func (s *AccountService) ListAccountSummaries(ctx context.Context, limit int, offset int) ([]domain.AccountSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts for summaries", slog.String("error", err.Error()))
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for i := range accounts {
		owner, err := s.clientRepo.FindClientByID(ctx, accounts[i].OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve owner of account %d: %w", accounts[i].Number, err)
		}
		summaries = append(summaries, domain.AccountSummary{
			Branch:        accounts[i].Branch,
			AccountNumber: accounts[i].Number,
			OwnerName:     owner.Name,
			OwnerTaxID:    owner.TaxID,
		})
	}
	return summaries, nil
}
