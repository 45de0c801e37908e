package swap

import (
	"fmt"

	"esarif/modules/rates"
)

// MethodCategory classifies a payment method.
type MethodCategory string

const (
	CategoryBank         MethodCategory = "bank"
	CategoryMobileMoney  MethodCategory = "mobile_money"
	CategoryCryptoWallet MethodCategory = "crypto_wallet"
)

// PaymentMethod is one entry of the static payment-method catalog.
type PaymentMethod struct {
	ID       string
	Label    string
	Category MethodCategory
}

var paymentMethods = []PaymentMethod{
	{ID: "premier-bank", Label: "Premier Bank", Category: CategoryBank},
	{ID: "salaam-bank", Label: "Salaam Somali Bank", Category: CategoryBank},
	{ID: "dahabshiil-bank", Label: "Dahabshiil Bank", Category: CategoryBank},
	{ID: "evc-plus", Label: "EVC Plus", Category: CategoryMobileMoney},
	{ID: "zaad", Label: "ZAAD Service", Category: CategoryMobileMoney},
	{ID: "sahal", Label: "SAHAL Wallet", Category: CategoryMobileMoney},
	{ID: "edahab", Label: "eDahab", Category: CategoryMobileMoney},
	{ID: "mpesa", Label: "M-Pesa", Category: CategoryMobileMoney},
	{ID: "trust-wallet", Label: "Trust Wallet", Category: CategoryCryptoWallet},
	{ID: "metamask", Label: "MetaMask", Category: CategoryCryptoWallet},
}

// LookupMethod resolves a payment-method id.
func LookupMethod(id string) (PaymentMethod, error) {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m, nil
		}
	}
	return PaymentMethod{}, fmt.Errorf("payment method %q: %w", id, rates.ErrNotFound)
}

// MethodsFor returns the catalog entries selectable in the given mode.
// Buy and sell settle over a fiat rail (bank or mobile money); transfers
// move between mobile wallets.
func MethodsFor(mode Mode) []PaymentMethod {
	var out []PaymentMethod
	for _, m := range paymentMethods {
		switch mode {
		case ModeBuy, ModeSell:
			if m.Category == CategoryBank || m.Category == CategoryMobileMoney {
				out = append(out, m)
			}
		case ModeTransfer:
			if m.Category == CategoryMobileMoney {
				out = append(out, m)
			}
		}
	}
	return out
}

func methodAllowed(mode Mode, id string) bool {
	for _, m := range MethodsFor(mode) {
		if m.ID == id {
			return true
		}
	}
	return false
}
