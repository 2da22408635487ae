package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// OpenAccountRequest defines the data needed to open an account for a client.
// All fields are optional: the default is a checking account under the
// configured limits, matching the branch's standard product.
type OpenAccountRequest struct {
	Type           string  `json:"type" binding:"omitempty,oneof=STANDARD CHECKING"`
	Limit          *string `json:"limit" binding:"omitempty,money"` // Checking only
	MaxWithdrawals *int    `json:"maxWithdrawals" binding:"omitempty,gt=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNumber  int64             `json:"accountNumber"`
	Branch         string            `json:"branch"`
	OwnerID        string            `json:"ownerID"`
	Balance        decimal.Decimal   `json:"balance"`
	Type           domain.PolicyKind `json:"type"`
	Limit          *decimal.Decimal  `json:"limit,omitempty"`
	MaxWithdrawals *int              `json:"maxWithdrawals,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountNumber: acc.Number,
		Branch:        acc.Branch,
		OwnerID:       acc.OwnerID,
		Balance:       acc.Balance,
		Type:          acc.Policy.Kind,
		CreatedAt:     acc.CreatedAt,
	}
	if acc.Policy.Kind == domain.Checking {
		limit := acc.Policy.Limit
		maxW := acc.Policy.MaxWithdrawals
		resp.Limit = &limit
		resp.MaxWithdrawals = &maxW
	}
	return resp
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountSummaryResponse is the listing view of an account.
type AccountSummaryResponse struct {
	Branch        string `json:"branch"`
	AccountNumber int64  `json:"accountNumber"`
	OwnerName     string `json:"ownerName"`
	OwnerTaxID    string `json:"ownerTaxID"`
}

// ToAccountSummaryResponse converts a domain summary to its response DTO.
func ToAccountSummaryResponse(s domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		Branch:        s.Branch,
		AccountNumber: s.AccountNumber,
		OwnerName:     s.OwnerName,
		OwnerTaxID:    s.OwnerTaxID,
	}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of account summaries.
type ListAccountsResponse struct {
	Accounts []AccountSummaryResponse `json:"accounts"`
}
