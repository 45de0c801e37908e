package swap

import (
	"strings"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var currencyDecimalPlaces = map[string]int32{
	"BTC": 8,
	"ETH": 6,
	"BNB": 4,
	"SOL": 4,
	"TRX": 4,
}

// DecimalPlaces returns the display precision for a wallet/currency id.
func DecimalPlaces(id string) int32 {
	if places, ok := currencyDecimalPlaces[strings.ToUpper(id)]; ok {
		return places
	}
	return 2
}

// FormatAmount renders an amount with thousand separators at the
// currency's display precision.
func FormatAmount(amount decimal.Decimal, id string) string {
	ac := accounting.Accounting{
		Symbol:    "",
		Precision: int(DecimalPlaces(id)),
		Thousand:  ",",
		Decimal:   ".",
	}
	return ac.FormatMoneyDecimal(amount)
}

// FormatPlain renders an amount without separators, for machine-facing
// fields.
func FormatPlain(amount decimal.Decimal, id string) string {
	return amount.StringFixed(DecimalPlaces(id))
}
