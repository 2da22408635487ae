package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is a Deposit or a Withdrawal.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is the immutable record of a single monetary movement on one
// account. It is created only by a successful Deposit/Withdraw on the owning
// Account; rejected attempts leave no Transaction behind.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // UUID, for display/audit only
	AccountNumber int64           `json:"accountNumber"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	RecordedAt    time.Time       `json:"recordedAt"`
}
