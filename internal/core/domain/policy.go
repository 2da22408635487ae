package domain

import "github.com/shopspring/decimal"

// PolicyKind selects the rule set an account operates under.
type PolicyKind string

const (
	Standard PolicyKind = "STANDARD"
	Checking PolicyKind = "CHECKING"
)

// AccountPolicy is the rule set injected into an Account at creation time.
// Checking accounts carry a Limit that serves double duty: it is both the
// ceiling for a single withdrawal and the aggregate deposit ceiling per
// calendar day. MaxWithdrawals caps the number of withdrawals over the
// account's whole history; it is never reset.
type AccountPolicy struct {
	Kind           PolicyKind      `json:"kind"`
	Limit          decimal.Decimal `json:"limit,omitempty"`
	MaxWithdrawals int             `json:"maxWithdrawals,omitempty"`
}

// StandardPolicy returns the rule set with no caps beyond the base balance rules.
func StandardPolicy() AccountPolicy {
	return AccountPolicy{Kind: Standard}
}

// CheckingPolicy returns the checking rule set with the given caps.
func CheckingPolicy(limit decimal.Decimal, maxWithdrawals int) AccountPolicy {
	return AccountPolicy{
		Kind:           Checking,
		Limit:          limit,
		MaxWithdrawals: maxWithdrawals,
	}
}
