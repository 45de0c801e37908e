package rates

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

func builtinEntries() []Entry {
	d := decimal.RequireFromString
	return []Entry{
		// Mobile money. The Somali wallets are USD-denominated; M-Pesa
		// settles in KES.
		{ID: "EVC", Symbol: "$", Name: "EVC Plus", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("1")}},
		{ID: "ZAAD", Symbol: "$", Name: "ZAAD Service", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("1")}},
		{ID: "SAHAL", Symbol: "$", Name: "SAHAL Wallet", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("1")}},
		{ID: "EDAHAB", Symbol: "$", Name: "eDahab", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("1")}},
		{ID: "PREMIER", Symbol: "$", Name: "Premier Wallet", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("1")}},
		{ID: "MPESA", Symbol: "KSh", Name: "M-Pesa", Kind: KindMobileMoney, Pricing: DirectRate{PerUSD: d("128.55")}},

		// Crypto, priced in USD per unit.
		{ID: "USDT-TRC20", Symbol: "USDT", Name: "Tether (TRC20)", Kind: KindCrypto, Pricing: UsdRate{USD: d("1.0001")}},
		{ID: "USDT-BEP20", Symbol: "USDT", Name: "Tether (BEP20)", Kind: KindCrypto, Pricing: UsdRate{USD: d("1.0002")}},
		{ID: "USDC-BEP20", Symbol: "USDC", Name: "USD Coin (BEP20)", Kind: KindCrypto, Pricing: UsdRate{USD: d("0.9998")}},
		{ID: "BTC", Symbol: "BTC", Name: "Bitcoin", Kind: KindCrypto, Pricing: UsdRate{USD: d("64230.50")}},
		{ID: "ETH", Symbol: "ETH", Name: "Ethereum", Kind: KindCrypto, Pricing: UsdRate{USD: d("3150.75")}},
		{ID: "BNB", Symbol: "BNB", Name: "BNB Smart Chain", Kind: KindCrypto, Pricing: UsdRate{USD: d("585.20")}},
		{ID: "TRX", Symbol: "TRX", Name: "Tron", Kind: KindCrypto, Pricing: UsdRate{USD: d("0.1352")}},
		{ID: "SOL", Symbol: "SOL", Name: "Solana", Kind: KindCrypto, Pricing: UsdRate{USD: d("162.40")}},
	}
}

// entryConfig is the JSON shape of one override entry. Rates are strings so
// prices survive the decode without float drift. Exactly one of rate and
// rateUSD must be set.
type entryConfig struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Kind    string  `json:"kind"`
	Rate    *string `json:"rate,omitempty"`    // local units per 1 USD
	RateUSD *string `json:"rateUSD,omitempty"` // USD per 1 unit
}

// NewTableFromFile builds a table from the built-in catalog with entries
// from a JSON overrides file merged on top.
func NewTableFromFile(path string) (*Table, error) {
	overrides, err := loadEntryConfigs(path)
	if err != nil {
		return nil, err
	}

	entries := builtinEntries()
	for id, cfg := range overrides {
		entry, err := cfg.toEntry(id)
		if err != nil {
			return nil, fmt.Errorf("rates file %s: %w", path, err)
		}
		entries = append(entries, entry)
	}
	return NewTableFromEntries(entries), nil
}

func loadEntryConfigs(path string) (map[string]entryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Try relative to the working directory before giving up.
		cwd, _ := os.Getwd()
		altPath := filepath.Join(cwd, path)
		data, err = os.ReadFile(altPath)
		if err != nil {
			return nil, fmt.Errorf("reading rates file %s (and alternative %s): %w", path, altPath, err)
		}
		log.Printf("Loaded rates file from alternative path: %s", altPath)
	}

	var configs map[string]entryConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("unmarshaling rates file %s: %w", path, err)
	}
	return configs, nil
}

func (cfg entryConfig) toEntry(id string) (Entry, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return Entry{}, fmt.Errorf("entry with empty id")
	}

	var kind Kind
	switch Kind(cfg.Kind) {
	case KindMobileMoney, KindCrypto:
		kind = Kind(cfg.Kind)
	default:
		return Entry{}, fmt.Errorf("entry %s: unknown kind %q", id, cfg.Kind)
	}

	if (cfg.Rate == nil) == (cfg.RateUSD == nil) {
		return Entry{}, fmt.Errorf("entry %s: exactly one of rate and rateUSD must be set", id)
	}

	var pricing Rate
	if cfg.Rate != nil {
		v, err := decimal.NewFromString(*cfg.Rate)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %s: bad rate %q: %w", id, *cfg.Rate, err)
		}
		pricing = DirectRate{PerUSD: v}
	} else {
		v, err := decimal.NewFromString(*cfg.RateUSD)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %s: bad rateUSD %q: %w", id, *cfg.RateUSD, err)
		}
		pricing = UsdRate{USD: v}
	}

	return Entry{
		ID:      id,
		Symbol:  cfg.Symbol,
		Name:    cfg.Name,
		Kind:    kind,
		Pricing: pricing,
	}, nil
}
