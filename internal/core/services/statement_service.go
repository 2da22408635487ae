package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/brisabank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
)

// StatementService derives statements from account histories. It only ever
// reads: generation never mutates the account or its history.
type StatementService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewStatementService creates a new StatementService.
func NewStatementService(accountRepo portsrepo.AccountRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) *StatementService {
	return &StatementService{accountRepo: accountRepo, clientRepo: clientRepo}
}

// Statement builds the partitioned report for one account.
func (s *StatementService) Statement(ctx context.Context, accountNumber int64) (*domain.Statement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load account for statement", slog.String("error", err.Error()), slog.Int64("account_number", accountNumber))
		}
		return nil, err
	}

	owner, err := s.clientRepo.FindClientByID(ctx, account.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner of account %d: %w", accountNumber, err)
	}

	st := domain.BuildStatement(account, owner.Name)
	logger.Debug("Statement generated",
		slog.Int64("account_number", accountNumber),
		slog.Int("deposits", len(st.Deposits)),
		slog.Int("withdrawals", len(st.Withdrawals)))
	return &st, nil
}
