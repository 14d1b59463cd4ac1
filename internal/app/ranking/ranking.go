// Package ranking orders wallet balances for display and values them in USD.
//
// Everything here is a pure function of its arguments: no I/O, no shared state,
// inputs are never modified.
package ranking

import (
	"cmp"
	"math"
	"slices"

	"balance_ranker/internal/domain/entity"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DropReason explains why a balance was left out of the ranked view.
type DropReason string

const (
	DropUnknownChain  DropReason = "unknown_chain"
	DropInvalidAmount DropReason = "invalid_amount"
)

// Rank filters out balances on unknown chains and balances without a positive
// amount, orders the rest by chain priority (highest first) and enriches each row
// with its USD value and display amount.
//
// Rows with equal priority keep their input order. A row whose currency has no
// known price, or whose value exceeds the float64 range, gets a nil USDValue.
// The result is never nil.
func Rank(balances []entity.WalletBalance, prices entity.PriceTable) []entity.RankedBalance {
	retained := lo.Filter(balances, func(b entity.WalletBalance, _ int) bool {
		_, dropped := DropReasonOf(b)
		return !dropped
	})

	slices.SortStableFunc(retained, func(a, b entity.WalletBalance) int {
		return cmp.Compare(b.Chain.Priority(), a.Chain.Priority())
	})

	return lo.Map(retained, func(b entity.WalletBalance, _ int) entity.RankedBalance {
		return entity.RankedBalance{
			Currency:        b.Currency,
			Amount:          b.Amount,
			Chain:           b.Chain,
			Priority:        b.Chain.Priority(),
			USDValue:        usdValue(b, prices),
			FormattedAmount: FormatAmount(b.Amount),
		}
	})
}

// DropReasonOf reports whether Rank drops b, and why.
// NaN and +Inf amounts count as invalid.
func DropReasonOf(b entity.WalletBalance) (DropReason, bool) {
	switch {
	case !b.Chain.Known():
		return DropUnknownChain, true
	case !(b.Amount > 0) || math.IsInf(b.Amount, 1):
		return DropInvalidAmount, true
	}
	return "", false
}

// CountDropped tallies the balances Rank would drop, per reason.
func CountDropped(balances []entity.WalletBalance) map[DropReason]int {
	counts := make(map[DropReason]int)
	for _, b := range balances {
		if reason, dropped := DropReasonOf(b); dropped {
			counts[reason]++
		}
	}
	return counts
}

// FormatAmount renders an amount with the shortest decimal representation,
// without exponent and without a fixed number of fractional digits.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(amount).String()
}

// Summarize counts priced and unpriced rows and totals the priced ones.
// A total beyond the float64 range is reported as math.MaxFloat64 with
// TotalUSDOverflow set.
func Summarize(rows []entity.RankedBalance) entity.ValuationSummary {
	summary := entity.ValuationSummary{Rows: len(rows)}
	var unpriced []string
	for _, row := range rows {
		if !row.Priced() {
			summary.Unpriced++
			unpriced = append(unpriced, row.Currency)
			continue
		}
		summary.Priced++
		if summary.TotalUSDOverflow {
			continue
		}
		if total := summary.TotalUSD + *row.USDValue; isFinite(total) {
			summary.TotalUSD = total
		} else {
			summary.TotalUSD = math.MaxFloat64
			summary.TotalUSDOverflow = true
		}
	}
	if len(unpriced) > 0 {
		summary.UnpricedCurrencies = lo.Uniq(unpriced)
	}
	return summary
}

func usdValue(b entity.WalletBalance, prices entity.PriceTable) *float64 {
	price, ok := prices.Lookup(b.Currency)
	if !ok {
		return nil
	}
	value := price * b.Amount
	if !isFinite(value) {
		return nil
	}
	return &value
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
