package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
)

// dayLayout keys the rolling daily-deposit window by calendar date.
const dayLayout = "2006-01-02"

// Account holds the balance and transaction history of a single client
// account. Deposit and Withdraw are the only mutations; each successful call
// changes the balance and appends exactly one Transaction, and a failed call
// changes nothing. Account itself is not safe for concurrent use; callers
// must serialise mutations per account (the memory repository does this).
type Account struct {
	Number  int64           `json:"number"` // Sequential, assigned at creation
	Branch  string          `json:"branch"`
	OwnerID string          `json:"ownerID"` // Owning client's ID, never a pointer
	Balance decimal.Decimal `json:"balance"`
	Policy  AccountPolicy   `json:"policy"`
	AuditFields

	history History

	// Rolling daily-deposit state, meaningful only for checking accounts.
	depositsToday  decimal.Decimal
	lastDepositDay string
}

// NewAccount creates an account with a zero balance and empty history.
// The sequential number is assigned by the repository at save time.
func NewAccount(branch string, ownerID string, policy AccountPolicy, now time.Time) *Account {
	return &Account{
		Branch:  branch,
		OwnerID: ownerID,
		Balance: decimal.Zero,
		Policy:  policy,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// History returns the account's transaction log in recording order.
func (a *Account) History() []Transaction {
	return a.history.All()
}

// Deposit credits amount to the account and records a Deposit transaction.
// Checking accounts additionally enforce the rolling daily deposit cap: the
// day's running total resets when the calendar date changes, and a deposit
// that would push the total past Policy.Limit is rejected. The amount check
// runs before any counter mutation, so a rejected call leaves the daily
// total untouched.
func (a *Account) Deposit(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	if a.Policy.Kind == Checking {
		day := now.Format(dayLayout)
		total := a.depositsToday
		if a.lastDepositDay != day {
			total = decimal.Zero
		}
		if total.Add(amount).GreaterThan(a.Policy.Limit) {
			return nil, apperrors.ErrDailyDepositCapExceeded
		}
		a.lastDepositDay = day
		a.depositsToday = total.Add(amount)
	}

	return a.record(Deposit, amount, now), nil
}

// Withdraw debits amount from the account and records a Withdrawal
// transaction. Checking accounts enforce the per-withdrawal cap and the
// withdrawal count limit; the count covers the entire history, not a day
// window.
func (a *Account) Withdraw(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	if a.Policy.Kind == Checking {
		if amount.GreaterThan(a.Policy.Limit) {
			return nil, apperrors.ErrWithdrawalCapExceeded
		}
		if a.history.CountKind(Withdrawal) >= a.Policy.MaxWithdrawals {
			return nil, apperrors.ErrWithdrawalCountExceeded
		}
	}

	if amount.GreaterThan(a.Balance) {
		return nil, apperrors.ErrInsufficientFunds
	}

	return a.record(Withdrawal, amount, now), nil
}

// record applies the balance change and appends the transaction. The two
// mutations happen together so callers only ever observe both or neither.
func (a *Account) record(kind TransactionKind, amount decimal.Decimal, now time.Time) *Transaction {
	if kind == Withdrawal {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
	a.LastUpdatedAt = now

	txn := Transaction{
		TransactionID: uuid.NewString(),
		AccountNumber: a.Number,
		Kind:          kind,
		Amount:        amount,
		RecordedAt:    now,
	}
	a.history.Append(txn)
	return &txn
}

// Snapshot returns a copy of the account safe to hand out to readers while
// the original keeps mutating. The history is copied; decimals are immutable.
func (a *Account) Snapshot() *Account {
	cp := *a
	cp.history = History{entries: a.history.All()}
	return &cp
}

// AccountSummary is the read-only listing view of an account.
type AccountSummary struct {
	Branch        string `json:"branch"`
	AccountNumber int64  `json:"accountNumber"`
	OwnerName     string `json:"ownerName"`
	OwnerTaxID    string `json:"ownerTaxID"`
}
