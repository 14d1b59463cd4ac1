package service

import (
	"context"
	"fmt"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/app/ranking"
	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/pkg/metrics"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// rankingServiceImpl implements port.RankingService.
type rankingServiceImpl struct {
	balances port.BalanceSource
	prices   port.PriceSource
	logger   port.Logger
	metrics  *metrics.Metrics
}

// NewRankingService creates a new instance of rankingServiceImpl.
func NewRankingService(balances port.BalanceSource, prices port.PriceSource, l port.Logger, m *metrics.Metrics) port.RankingService {
	return &rankingServiceImpl{
		balances: balances,
		prices:   prices,
		logger:   l.With("component", "RankingService"),
		metrics:  m,
	}
}

// RankedView implements port.RankingService. Balances and prices are fetched
// concurrently on every call.
func (s *rankingServiceImpl) RankedView(ctx context.Context) (entity.RankedView, error) {
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
		return entity.RankedView{}, err
	}

	rows := ranking.Rank(balances, prices)
	summary := ranking.Summarize(rows)

	dropped := ranking.CountDropped(balances)
	for reason, n := range dropped {
		s.logger.Debug("Balances left out of ranked view", "reason", reason, "count", n)
	}
	if summary.Unpriced > 0 {
		s.logger.Warn("No price known for some currencies", "currencies", summary.UnpricedCurrencies)
	}
	s.metrics.ObserveRank(lo.MapKeys(dropped, func(_ int, r ranking.DropReason) string {
		return string(r)
	}), summary.Unpriced)

	s.logger.Info("Ranked balances", "input", len(balances), "rows", summary.Rows, "totalUSD", summary.TotalUSD)
	return entity.RankedView{Balances: rows, Summary: summary}, nil
}
