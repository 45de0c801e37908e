package swap

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeFeeFiatRail(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "0.00"},
		{"0.5", "0.01"},
		{"100", "1.00"},
		{"250", "2.50"},
		{"12345.67", "123.46"},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		got := ComputeFee(amount, false)
		if got.StringFixed(2) != tc.want {
			t.Errorf("ComputeFee(%s, false) = %s, want %s", tc.amount, got.StringFixed(2), tc.want)
		}
	}
}

func TestComputeFeeCryptoLegIsFree(t *testing.T) {
	for _, amount := range []string{"0", "0.01", "50", "100000"} {
		got := ComputeFee(decimal.RequireFromString(amount), true)
		if !got.IsZero() {
			t.Errorf("ComputeFee(%s, true) = %s, want 0", amount, got)
		}
	}
}
