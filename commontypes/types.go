package commontypes

// QuoteResponse is one quote rendered by the HTTP receiver. Amount fields
// are decimal strings; Display carries the user-facing formatted variants.
type QuoteResponse struct {
	Mode             string       `json:"mode"`
	From             string       `json:"from"`
	To               string       `json:"to"`
	Amount           string       `json:"amount"`
	ServiceFee       string       `json:"serviceFee"`
	NetAmount        string       `json:"netAmount"`
	EstimatedReceive string       `json:"estimatedReceive"`
	Rate             string       `json:"rate"`
	Display          QuoteDisplay `json:"display"`
}

// QuoteDisplay holds thousand-separated presentation strings.
type QuoteDisplay struct {
	Amount           string `json:"amount"`
	ServiceFee       string `json:"serviceFee"`
	NetAmount        string `json:"netAmount"`
	EstimatedReceive string `json:"estimatedReceive"`
}

// WalletInfo is one rate-table entry in the catalog listing.
type WalletInfo struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Rate    string `json:"rate,omitempty"`    // local units per 1 USD
	RateUSD string `json:"rateUSD,omitempty"` // USD per 1 unit
}

// MethodInfo is one payment-method catalog entry.
type MethodInfo struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// ErrorResponse is the JSON body for refused requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
