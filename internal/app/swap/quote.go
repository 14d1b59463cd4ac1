// Package swap prices a currency swap from a price table and checks it against
// the wallet's holdings.
package swap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"balance_ranker/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// quoteDigits is the number of fractional digits of displayed rates and amounts.
const quoteDigits = 6

var (
	ErrInvalidAmount       = errors.New("please enter a valid amount")
	ErrMissingCurrency     = errors.New("both currencies are required")
	ErrSameCurrency        = errors.New("cannot swap a currency for itself")
	ErrUnknownCurrency     = errors.New("no price known for currency")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrQuoteOutOfRange     = errors.New("swap amount is out of range")
)

// IsValidationError reports whether err comes from rejecting the request itself,
// as opposed to a failure of the price or balance collaborators.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidAmount, ErrMissingCurrency, ErrSameCurrency, ErrUnknownCurrency, ErrInsufficientBalance, ErrQuoteOutOfRange} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Holdings is the total positive amount held per currency, across chains.
type Holdings map[string]float64

// HoldingsOf sums the balances per currency. Non-positive and non-finite amounts are ignored.
func HoldingsOf(balances []entity.WalletBalance) Holdings {
	holdings := make(Holdings)
	for _, b := range balances {
		if b.Amount > 0 && !math.IsInf(b.Amount, 1) {
			holdings[b.Currency] += b.Amount
		}
	}
	return holdings
}

// Available returns the amount held of currency, zero when none.
func (h Holdings) Available(currency string) float64 {
	return h[currency]
}

// Quote converts req.Amount of req.From into req.To at the ratio of their unit prices.
// When available is nil the holdings check is skipped.
func Quote(req entity.SwapRequest, prices entity.PriceTable, available func(currency string) float64) (entity.SwapQuote, error) {
	from, to := strings.TrimSpace(req.From), strings.TrimSpace(req.To)
	if from == "" || to == "" {
		return entity.SwapQuote{}, ErrMissingCurrency
	}
	if !(req.Amount > 0) || math.IsInf(req.Amount, 1) {
		return entity.SwapQuote{}, ErrInvalidAmount
	}
	if from == to {
		return entity.SwapQuote{}, fmt.Errorf("%w: %s", ErrSameCurrency, from)
	}

	fromPrice, ok := prices.Lookup(from)
	if !ok {
		return entity.SwapQuote{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toPrice, ok := prices.Lookup(to)
	if !ok {
		return entity.SwapQuote{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	if available != nil {
		if held := available(from); req.Amount > held {
			return entity.SwapQuote{}, fmt.Errorf("%w. Available: %s %s",
				ErrInsufficientBalance, decimal.NewFromFloat(held).String(), from)
		}
	}

	rate := fromPrice / toPrice
	toAmount := req.Amount * rate
	if math.IsInf(rate, 0) || math.IsInf(toAmount, 0) {
		return entity.SwapQuote{}, fmt.Errorf("%w: %s to %s", ErrQuoteOutOfRange, from, to)
	}
	return entity.SwapQuote{
		From:              from,
		To:                to,
		FromAmount:        req.Amount,
		ToAmount:          toAmount,
		FormattedToAmount: decimal.NewFromFloat(toAmount).StringFixed(quoteDigits),
		Rate:              rate,
		RateDisplay:       fmt.Sprintf("1 %s = %s %s", from, decimal.NewFromFloat(rate).StringFixed(quoteDigits), to),
	}, nil
}
