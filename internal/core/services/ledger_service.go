package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/brisabank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
)

// LedgerService runs the two balance mutations. Each operation executes
// inside the repository's per-account critical section so the balance
// invariant holds under concurrent callers.
type LedgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// NewLedgerService creates a LedgerService using the wall clock.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade) *LedgerService {
	return NewLedgerServiceWithClock(accountRepo, time.Now)
}

// NewLedgerServiceWithClock creates a LedgerService with an explicit clock.
// The clock drives transaction timestamps and the daily-deposit date window.
func NewLedgerServiceWithClock(accountRepo portsrepo.AccountRepositoryFacade, now func() time.Time) *LedgerService {
	return &LedgerService{accountRepo: accountRepo, now: now}
}

// Deposit credits amount to the account.
func (s *LedgerService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error) {
	return s.mutate(ctx, accountNumber, amount, func(acc *domain.Account, now time.Time) (*domain.Transaction, error) {
		return acc.Deposit(amount, now)
	})
}

// Withdraw debits amount from the account.
func (s *LedgerService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error) {
	return s.mutate(ctx, accountNumber, amount, func(acc *domain.Account, now time.Time) (*domain.Transaction, error) {
		return acc.Withdraw(amount, now)
	})
}

func (s *LedgerService) mutate(ctx context.Context, accountNumber int64, amount decimal.Decimal, op func(*domain.Account, time.Time) (*domain.Transaction, error)) (*domain.Transaction, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var (
		txn     *domain.Transaction
		balance decimal.Decimal
	)
	err := s.accountRepo.WithAccount(ctx, accountNumber, func(acc *domain.Account) error {
		recorded, opErr := op(acc, s.now())
		if opErr != nil {
			return opErr
		}
		txn = recorded
		balance = acc.Balance
		return nil
	})
	if err != nil {
		if isLedgerRule(err) {
			logger.Warn("Ledger operation rejected",
				slog.Int64("account_number", accountNumber),
				slog.String("amount", amount.String()),
				slog.String("reason", err.Error()))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Ledger operation failed", slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		}
		return nil, decimal.Zero, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("account_number", accountNumber),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", amount.String()))
	return txn, balance, nil
}

// isLedgerRule reports whether err is one of the recoverable rule
// rejections rather than an infrastructure failure.
func isLedgerRule(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidAmount) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) ||
		errors.Is(err, apperrors.ErrWithdrawalCapExceeded) ||
		errors.Is(err, apperrors.ErrWithdrawalCountExceeded) ||
		errors.Is(err, apperrors.ErrDailyDepositCapExceeded)
}
