package swap

import "github.com/shopspring/decimal"

// Service fee schedule. Movement over the fiat/mobile rail is charged a
// flat 1%. The crypto leg of buy/sell is not charged a direct fee; the
// margin sits in the per-token USD price instead.
var fiatRailFeeRate = decimal.RequireFromString("0.01")

// ComputeFee returns the service fee for a transaction amount.
// amount must be non-negative.
func ComputeFee(amount decimal.Decimal, cryptoLeg bool) decimal.Decimal {
	if cryptoLeg || amount.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(fiatRailFeeRate).Round(2)
}
