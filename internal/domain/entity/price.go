package entity

import "math"

// PriceQuote is one entry of the public price feed.
type PriceQuote struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
}

// PriceTable maps a currency symbol to its USD unit price.
type PriceTable map[string]float64

// Lookup returns the unit price for currency. The second result is false when no
// usable price is known: the symbol is absent, or its entry is not a positive finite number.
func (t PriceTable) Lookup(currency string) (float64, bool) {
	price, ok := t[currency]
	if !ok || !IsUsablePrice(price) {
		return 0, false
	}
	return price, true
}

// IsUsablePrice reports whether p can serve as a unit price.
func IsUsablePrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 1)
}
