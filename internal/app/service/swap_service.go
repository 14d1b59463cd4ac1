package service

import (
	"context"
	"fmt"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/app/swap"
	"balance_ranker/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// swapServiceImpl implements port.SwapService.
type swapServiceImpl struct {
	balances port.BalanceSource
	prices   port.PriceSource
	logger   port.Logger
}

// NewSwapService creates a new instance of swapServiceImpl.
func NewSwapService(balances port.BalanceSource, prices port.PriceSource, l port.Logger) port.SwapService {
	return &swapServiceImpl{
		balances: balances,
		prices:   prices,
		logger:   l.With("component", "SwapService"),
	}
}

// Quote implements port.SwapService. Validation failures are returned as the
// sentinel errors of package swap.
func (s *swapServiceImpl) Quote(ctx context.Context, req entity.SwapRequest) (entity.SwapQuote, error) {
	var (
		balances []entity.WalletBalance
		prices   entity.PriceTable
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = s.balances.GetBalances(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get balances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prices, err = s.prices.PriceTable(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get prices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.SwapQuote{}, err
	}

	quote, err := swap.Quote(req, prices, swap.HoldingsOf(balances).Available)
	if err != nil {
		s.logger.Debug("Swap quote rejected", "from", req.From, "to", req.To, "amount", req.Amount, "error", err)
		return entity.SwapQuote{}, err
	}
	s.logger.Debug("Swap quoted", "from", quote.From, "to", quote.To, "rate", quote.Rate)
	return quote, nil
}
