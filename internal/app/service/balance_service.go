package service

import (
	"context"
	"fmt"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// CompositeBalanceSource concatenates the balances of several sources.
// Results keep source order so that equal-priority rows rank deterministically.
type CompositeBalanceSource struct {
	sources []port.BalanceSource
	logger  port.Logger
}

// NewCompositeBalanceSource creates a source reading all of sources concurrently.
func NewCompositeBalanceSource(l port.Logger, sources ...port.BalanceSource) *CompositeBalanceSource {
	return &CompositeBalanceSource{
		sources: sources,
		logger:  l.With("component", "CompositeBalanceSource"),
	}
}

// GetBalances implements port.BalanceSource. Any failing source fails the whole fetch.
func (c *CompositeBalanceSource) GetBalances(ctx context.Context) ([]entity.WalletBalance, error) {
	perSource := make([][]entity.WalletBalance, len(c.sources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range c.sources {
		g.Go(func() error {
			balances, err := src.GetBalances(gCtx)
			if err != nil {
				return fmt.Errorf("balance source %d: %w", i, err)
			}
			perSource[i] = balances
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Error("Failed to collect balances", "error", err)
		return nil, err
	}

	all := lo.Flatten(perSource)
	c.logger.Debug("Collected balances", "sources", len(c.sources), "records", len(all))
	return all, nil
}
