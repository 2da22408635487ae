package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// LedgerSvcFacade exposes the two balance-mutating operations. Each call
// either fully applies (balance change plus one history append) or leaves
// the account untouched and returns one of the apperrors rule sentinels.
type LedgerSvcFacade interface {
	// Deposit credits amount to the account and returns the recorded
	// transaction together with the balance after it.
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error)

	// Withdraw debits amount from the account and returns the recorded
	// transaction together with the balance after it.
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error)
}

// StatementSvcFacade exposes statement generation, a pure read over one
// account's history.
type StatementSvcFacade interface {
	Statement(ctx context.Context, accountNumber int64) (*domain.Statement, error)
}
