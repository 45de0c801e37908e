package swap

import (
	"errors"
	"fmt"
	"log"

	"esarif/modules/rates"

	"github.com/shopspring/decimal"
)

// Mode is the top-level state of a transaction draft.
type Mode string

const (
	ModeBuy      Mode = "buy"
	ModeSell     Mode = "sell"
	ModeTransfer Mode = "transfer"
)

// ErrWrongMode indicates an operation that the current mode does not allow.
var ErrWrongMode = errors.New("operation not available in this mode")

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBuy, ModeSell, ModeTransfer:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Session owns one in-progress transaction draft and keeps its derived
// fields consistent. One session per UI client; construct it explicitly and
// pass it where needed. All methods are single-threaded by contract: every
// mutation happens on the caller's event path and recomputes synchronously.
type Session struct {
	conv *Converter

	mode        Mode
	source      string
	destination string
	rawAmount   string
	amount      decimal.Decimal
	methodID    string
	lastMethod  map[Mode]string

	serviceFee       decimal.Decimal
	netAmount        decimal.Decimal
	estimatedReceive decimal.Decimal
}

// NewSession creates a draft with buy-mode defaults.
func NewSession(table *rates.Table) *Session {
	s := &Session{
		conv:       NewConverter(table),
		lastMethod: make(map[Mode]string),
	}
	s.mode = ModeBuy
	s.applyWalletDefaults()
	s.recompute()
	return s
}

func (s *Session) Mode() Mode                        { return s.mode }
func (s *Session) Source() string                    { return s.source }
func (s *Session) Destination() string               { return s.destination }
func (s *Session) Amount() decimal.Decimal           { return s.amount }
func (s *Session) RawAmount() string                 { return s.rawAmount }
func (s *Session) PaymentMethodID() string           { return s.methodID }
func (s *Session) ServiceFee() decimal.Decimal       { return s.serviceFee }
func (s *Session) NetAmount() decimal.Decimal        { return s.netAmount }
func (s *Session) EstimatedReceive() decimal.Decimal { return s.estimatedReceive }

// SetMode switches the draft to a new mode. The amount is cleared, the
// payment method chosen in the old mode is remembered and the one last used
// in the new mode restored, and wallet defaults are re-derived.
func (s *Session) SetMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	if mode == s.mode {
		return nil
	}

	s.lastMethod[s.mode] = s.methodID
	s.mode = mode
	s.rawAmount = ""
	s.amount = decimal.Zero
	s.methodID = s.lastMethod[mode]
	s.applyWalletDefaults()
	s.recompute()
	return nil
}

// SetAmount parses the raw input and recomputes derived fields. Unparseable
// or negative input is rejected with ErrInvalidAmount and the previous
// amount kept. An empty string clears the amount.
func (s *Session) SetAmount(raw string) error {
	if raw == "" {
		s.rawAmount = ""
		s.amount = decimal.Zero
		s.recompute()
		return nil
	}

	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}

	s.rawAmount = raw
	s.amount = amount
	s.recompute()
	return nil
}

// SetSource points the draft at a new source wallet.
func (s *Session) SetSource(id string) error {
	entry, err := s.conv.Table().Lookup(id)
	if err != nil {
		return err
	}
	s.source = entry.ID
	s.recompute()
	return nil
}

// SetDestination points the draft at a new destination wallet.
func (s *Session) SetDestination(id string) error {
	entry, err := s.conv.Table().Lookup(id)
	if err != nil {
		return err
	}
	s.destination = entry.ID
	s.recompute()
	return nil
}

// SwapWallets exchanges source and destination. Transfer mode only; buy and
// sell fix which side is the crypto leg.
func (s *Session) SwapWallets() error {
	if s.mode != ModeTransfer {
		return fmt.Errorf("swap wallets in %s mode: %w", s.mode, ErrWrongMode)
	}
	s.source, s.destination = s.destination, s.source
	s.recompute()
	return nil
}

// SelectPaymentMethod records the settlement method for the draft.
func (s *Session) SelectPaymentMethod(id string) error {
	if _, err := LookupMethod(id); err != nil {
		return err
	}
	if !methodAllowed(s.mode, id) {
		return fmt.Errorf("payment method %q in %s mode: %w", id, s.mode, ErrWrongMode)
	}
	s.methodID = id
	return nil
}

func (s *Session) applyWalletDefaults() {
	switch s.mode {
	case ModeBuy:
		s.source, s.destination = "EVC", "USDT-TRC20"
	case ModeSell:
		s.source, s.destination = "USDT-TRC20", "EVC"
	case ModeTransfer:
		s.source, s.destination = "EVC", "ZAAD"
	}
}

// recompute re-derives serviceFee, netAmount and estimatedReceive from the
// current inputs. Buy/sell amounts are USD-denominated and their crypto leg
// carries no direct fee; transfer amounts are source-denominated and pay
// the 1% rail fee. A conversion failure leaves the receive estimate at zero
// so callers render a neutral quote instead of crashing.
func (s *Session) recompute() {
	s.serviceFee = decimal.Zero
	s.netAmount = decimal.Zero
	s.estimatedReceive = decimal.Zero

	if s.amount.IsZero() {
		return
	}

	cryptoLeg := s.mode == ModeBuy || s.mode == ModeSell
	s.serviceFee = ComputeFee(s.amount, cryptoLeg)
	s.netAmount = s.amount.Sub(s.serviceFee)

	var received decimal.Decimal
	var err error
	if cryptoLeg {
		received, err = s.conv.FromUSD(s.netAmount, s.destination)
	} else {
		received, err = s.conv.Convert(s.netAmount, s.source, s.destination)
	}
	if err != nil {
		log.Printf("Session: cannot quote %s -> %s: %v", s.source, s.destination, err)
		return
	}

	s.estimatedReceive = received.Round(DecimalPlaces(s.destination))
}
