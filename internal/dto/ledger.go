package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// MovementRequest carries the amount for a deposit or withdrawal. The amount
// travels as a string and is parsed at the boundary; the core never sees raw
// text. The money binding tag rejects non-numeric, non-positive, and
// sub-cent values before the handler runs.
type MovementRequest struct {
	Amount string `json:"amount" binding:"required,money"`
}

// TransactionResponse defines the data returned for a recorded transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountNumber int64                  `json:"accountNumber"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	RecordedAt    time.Time              `json:"recordedAt"`
	Balance       decimal.Decimal        `json:"balance"` // Balance after this transaction
}

// ToTransactionResponse converts a recorded transaction plus the resulting
// balance to its response DTO.
func ToTransactionResponse(txn *domain.Transaction, balance decimal.Decimal) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountNumber: txn.AccountNumber,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		RecordedAt:    txn.RecordedAt,
		Balance:       balance,
	}
}
