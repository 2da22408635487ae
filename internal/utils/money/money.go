// Package money parses and formats currency amounts at the process boundary.
// The core only ever works with decimal.Decimal values that already passed
// through ParseAmount.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw user input to a positive currency amount. It
// accepts comma or dot as the decimal separator and rejects anything that is
// not a number, is zero or negative, or carries more than two fraction
// digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount %q must be positive", raw)
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount %q has more than two decimal places", raw)
	}
	return amount, nil
}

// Format renders an amount with two decimal places, e.g. "60.00".
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
