package rates

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound indicates the wallet/currency id has no table entry.
	ErrNotFound = errors.New("unknown currency")

	// ErrRateUnavailable indicates the entry exists but cannot be quoted
	// against (missing, zero or negative rate).
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// Kind classifies a table entry.
type Kind string

const (
	KindMobileMoney Kind = "mobile_money"
	KindCrypto      Kind = "crypto"
)

// Rate is the pricing side of an entry. Exactly one concrete type backs
// each entry: DirectRate for mobile money, UsdRate for crypto.
type Rate interface {
	// Valid reports whether the rate can be quoted against.
	Valid() bool
	isRate()
}

// DirectRate prices a mobile-money currency as local units per 1 USD.
type DirectRate struct {
	PerUSD decimal.Decimal
}

func (r DirectRate) Valid() bool { return r.PerUSD.IsPositive() }
func (DirectRate) isRate()       {}

// UsdRate prices a crypto token as USD per 1 unit.
type UsdRate struct {
	USD decimal.Decimal
}

func (r UsdRate) Valid() bool { return r.USD.IsPositive() }
func (UsdRate) isRate()       {}

// Entry is one row of the rate table.
type Entry struct {
	ID      string
	Symbol  string
	Name    string
	Kind    Kind
	Pricing Rate
}

// Table is the immutable catalog of supported wallets and currencies.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a table over the built-in catalog.
func NewTable() *Table {
	return NewTableFromEntries(builtinEntries())
}

// NewTableFromEntries builds a table over an explicit entry list.
// Later entries replace earlier ones with the same id.
func NewTableFromEntries(entries []Entry) *Table {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[strings.ToUpper(e.ID)] = e
	}
	return &Table{entries: m}
}

// Lookup resolves an id to its entry. Matching is case-insensitive.
func (t *Table) Lookup(id string) (Entry, error) {
	e, ok := t.entries[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Entry{}, fmt.Errorf("looking up %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// Entries returns all entries sorted by id.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
