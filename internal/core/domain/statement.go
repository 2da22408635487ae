package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StatementEntry is one display-ready line of a statement.
type StatementEntry struct {
	Kind       TransactionKind `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt string          `json:"recordedAt"`
}

// Statement is the derived, read-only report over one account's history:
// deposits and withdrawals partitioned and ordered by timestamp, plus the
// net balance over the whole set. Empty reports the no-transactions case
// explicitly so callers can distinguish it from a one-sided history, whose
// absent group is just an empty (non-nil) slice.
type Statement struct {
	AccountNumber int64            `json:"accountNumber"`
	Branch        string           `json:"branch"`
	OwnerName     string           `json:"ownerName"`
	Deposits      []StatementEntry `json:"deposits"`
	Withdrawals   []StatementEntry `json:"withdrawals"`
	Balance       decimal.Decimal  `json:"balance"`
	Empty         bool             `json:"empty"`
}

const statementTimeLayout = "02/01/2006 15:04:05"

// BuildStatement derives a statement from the account's history. It is a
// pure read: the history is sorted by timestamp (stable, so ties keep
// recording order), split into deposits and withdrawals, and the balance is
// recomputed by summing deposits and subtracting withdrawals across the
// entire sorted set.
func BuildStatement(account *Account, ownerName string) Statement {
	txns := account.History()
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].RecordedAt.Before(txns[j].RecordedAt)
	})

	st := Statement{
		AccountNumber: account.Number,
		Branch:        account.Branch,
		OwnerName:     ownerName,
		Deposits:      []StatementEntry{},
		Withdrawals:   []StatementEntry{},
		Balance:       decimal.Zero,
		Empty:         len(txns) == 0,
	}

	for _, txn := range txns {
		entry := StatementEntry{
			Kind:       txn.Kind,
			Amount:     txn.Amount,
			RecordedAt: txn.RecordedAt.Format(statementTimeLayout),
		}
		switch txn.Kind {
		case Deposit:
			st.Balance = st.Balance.Add(txn.Amount)
			st.Deposits = append(st.Deposits, entry)
		case Withdrawal:
			st.Balance = st.Balance.Sub(txn.Amount)
			st.Withdrawals = append(st.Withdrawals, entry)
		}
	}

	return st
}
