package dto

import (
	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// StatementEntryResponse is one line of a rendered statement.
type StatementEntryResponse struct {
	Kind       domain.TransactionKind `json:"kind"`
	Amount     decimal.Decimal        `json:"amount"`
	RecordedAt string                 `json:"recordedAt"`
}

// StatementResponse defines the data returned for a statement. Deposits and
// withdrawals are always present (possibly empty) so a one-sided history is
// distinguishable from the empty flag.
type StatementResponse struct {
	AccountNumber int64                    `json:"accountNumber"`
	Branch        string                   `json:"branch"`
	OwnerName     string                   `json:"ownerName"`
	Deposits      []StatementEntryResponse `json:"deposits"`
	Withdrawals   []StatementEntryResponse `json:"withdrawals"`
	Balance       decimal.Decimal          `json:"balance"`
	Empty         bool                     `json:"empty"`
}

// ToStatementResponse converts a domain.Statement to its response DTO.
func ToStatementResponse(st *domain.Statement) StatementResponse {
	return StatementResponse{
		AccountNumber: st.AccountNumber,
		Branch:        st.Branch,
		OwnerName:     st.OwnerName,
		Deposits:      toEntryResponses(st.Deposits),
		Withdrawals:   toEntryResponses(st.Withdrawals),
		Balance:       st.Balance,
		Empty:         st.Empty,
	}
}

func toEntryResponses(entries []domain.StatementEntry) []StatementEntryResponse {
	res := make([]StatementEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = StatementEntryResponse{
			Kind:       e.Kind,
			Amount:     e.Amount,
			RecordedAt: e.RecordedAt,
		}
	}
	return res
}
