package entity

// SwapRequest asks how much of To is received for Amount of From.
type SwapRequest struct {
	From   string  `json:"fromCurrency"`
	To     string  `json:"toCurrency"`
	Amount float64 `json:"fromAmount"`
}

// SwapQuote is the priced answer to a SwapRequest.
type SwapQuote struct {
	From              string  `json:"fromCurrency"`
	To                string  `json:"toCurrency"`
	FromAmount        float64 `json:"fromAmount"`
	ToAmount          float64 `json:"toAmount"`
	FormattedToAmount string  `json:"formattedToAmount"`
	Rate              float64 `json:"rate"`
	RateDisplay       string  `json:"rateDisplay"`
}
