package service

import (
	"context"

	"balance_ranker/internal/domain/entity"
)

type fakeBalanceSource struct {
	balances []entity.WalletBalance
	err      error
}

func (f fakeBalanceSource) GetBalances(context.Context) ([]entity.WalletBalance, error) {
	return f.balances, f.err
}

type fakeFeed struct {
	quotes []entity.PriceQuote
	err    error
	calls  int
}

func (f *fakeFeed) FetchQuotes(context.Context) ([]entity.PriceQuote, error) {
	f.calls++
	return f.quotes, f.err
}
