package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h domain.History
	h.Append(domain.Transaction{TransactionID: "a", Kind: domain.Deposit, Amount: dec("1")})
	h.Append(domain.Transaction{TransactionID: "b", Kind: domain.Withdrawal, Amount: dec("2")})
	h.Append(domain.Transaction{TransactionID: "c", Kind: domain.Deposit, Amount: dec("3")})

	all := h.All()
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].TransactionID, all[1].TransactionID, all[2].TransactionID})
	assert.Equal(t, 1, h.CountKind(domain.Withdrawal))
	assert.Equal(t, 2, h.CountKind(domain.Deposit))
}

func TestHistory_AllReturnsACopy(t *testing.T) {
	var h domain.History
	h.Append(domain.Transaction{TransactionID: "a", Kind: domain.Deposit, Amount: dec("1")})

	all := h.All()
	all[0].TransactionID = "mutated"

	assert.Equal(t, "a", h.All()[0].TransactionID)
}
