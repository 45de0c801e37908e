package swap

import (
	"esarif/commontypes"

	"github.com/shopspring/decimal"
)

// BuildQuote computes a one-shot quote without a session, for the HTTP
// receiver. Buy/sell amounts are USD-denominated; transfer amounts are
// denominated in the source currency.
func BuildQuote(conv *Converter, mode Mode, fromID, toID, rawAmount string) (commontypes.QuoteResponse, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return commontypes.QuoteResponse{}, err
	}

	from, err := conv.Table().Lookup(fromID)
	if err != nil {
		return commontypes.QuoteResponse{}, err
	}
	to, err := conv.Table().Lookup(toID)
	if err != nil {
		return commontypes.QuoteResponse{}, err
	}

	cryptoLeg := mode == ModeBuy || mode == ModeSell
	fee := ComputeFee(amount, cryptoLeg)
	net := amount.Sub(fee)

	one := decimal.NewFromInt(1)
	var received, rate decimal.Decimal
	if cryptoLeg {
		received, err = conv.FromUSD(net, to.ID)
		if err != nil {
			return commontypes.QuoteResponse{}, err
		}
		rate, err = conv.FromUSD(one, to.ID)
	} else {
		received, err = conv.Convert(net, from.ID, to.ID)
		if err != nil {
			return commontypes.QuoteResponse{}, err
		}
		rate, err = conv.Rate(from.ID, to.ID)
	}
	if err != nil {
		return commontypes.QuoteResponse{}, err
	}

	received = received.Round(DecimalPlaces(to.ID))

	// Amount, fee and net are denominated in the source currency for
	// transfers and in USD for buy/sell legs.
	amountID := from.ID
	if cryptoLeg {
		amountID = "USD"
	}

	return commontypes.QuoteResponse{
		Mode:             string(mode),
		From:             from.ID,
		To:               to.ID,
		Amount:           FormatPlain(amount, amountID),
		ServiceFee:       FormatPlain(fee, amountID),
		NetAmount:        FormatPlain(net, amountID),
		EstimatedReceive: FormatPlain(received, to.ID),
		Rate:             rate.Round(8).String(),
		Display: commontypes.QuoteDisplay{
			Amount:           FormatAmount(amount, amountID),
			ServiceFee:       FormatAmount(fee, amountID),
			NetAmount:        FormatAmount(net, amountID),
			EstimatedReceive: FormatAmount(received, to.ID),
		},
	}, nil
}
