package entity

// RankedBalance is one display row produced by the ranking pipeline.
type RankedBalance struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Chain    Chain   `json:"chain"`
	Priority int     `json:"priority"`
	// USDValue is nil when no price is known for Currency.
	USDValue        *float64 `json:"usdValue"`
	FormattedAmount string   `json:"formattedAmount"`
}

// Priced reports whether the row carries a USD valuation.
func (b RankedBalance) Priced() bool {
	return b.USDValue != nil
}

// ValuationSummary aggregates a ranked view for display.
// TotalUSDOverflow is set when the priced rows sum beyond the float64 range.
type ValuationSummary struct {
	Rows               int      `json:"rows"`
	Priced             int      `json:"priced"`
	Unpriced           int      `json:"unpriced"`
	TotalUSD           float64  `json:"totalUSD"`
	TotalUSDOverflow   bool     `json:"totalUSDOverflow,omitempty"`
	UnpricedCurrencies []string `json:"unpricedCurrencies,omitempty"`
}

// RankedView is the pipeline output together with its summary.
type RankedView struct {
	Balances []RankedBalance  `json:"balances"`
	Summary  ValuationSummary `json:"summary"`
}
