package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brisabank/bank_ledger_app/internal/utils/money"
)

func TestParseAmount_Valid(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"100", "100"},
		{"10.50", "10.5"},
		{"10,50", "10.5"},
		{" 25 ", "25"},
		{"0.01", "0.01"},
		{"0,01", "0.01"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := money.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestParseAmount_Rejected(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"10.5.0",
		"0",
		"0,00",
		"-5",
		"-0.01",
		"10.123", // sub-cent
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := money.ParseAmount(input)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "60.00", money.Format(decimal.NewFromInt(60)))
	assert.Equal(t, "10.50", money.Format(decimal.RequireFromString("10.5")))
	assert.Equal(t, "0.00", money.Format(decimal.Zero))
}
