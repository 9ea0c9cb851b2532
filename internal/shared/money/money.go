package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places, half up.
// All statutory amounts in the engine are rounded with this cadence:
// per category, per bracket slice, per contribution, never only on totals.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MulRound2 multiplies an amount by a rate and rounds the product.
func MulRound2(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate))
}
