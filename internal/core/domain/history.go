package domain

// History is the append-only transaction log owned by exactly one Account.
// Entries are kept in recording order, which coincides with chronological
// order because timestamps are assigned at append time.
type History struct {
	entries []Transaction
}

// Append adds a transaction to the end of the log. It never fails and never
// reorders existing entries.
func (h *History) Append(txn Transaction) {
	h.entries = append(h.entries, txn)
}

// All returns a copy of the log in recording order.
func (h *History) All() []Transaction {
	out := make([]Transaction, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of recorded transactions.
func (h *History) Len() int {
	return len(h.entries)
}

// CountKind reports how many recorded transactions are of the given kind.
func (h *History) CountKind(kind TransactionKind) int {
	n := 0
	for _, txn := range h.entries {
		if txn.Kind == kind {
			n++
		}
	}
	return n
}
