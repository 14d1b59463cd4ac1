package service

import (
	"context"
	"errors"
	"testing"

	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/pkg/logger"
	"balance_ranker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePriceSource struct {
	table entity.PriceTable
	err   error
}

func (f fakePriceSource) PriceTable(context.Context) (entity.PriceTable, error) {
	return f.table, f.err
}

func TestRankingServiceRankedView(t *testing.T) {
	balances := fakeBalanceSource{balances: []entity.WalletBalance{
		{Currency: "ETH", Amount: 2, Chain: entity.ChainEthereum},
		{Currency: "OSMO", Amount: 0.5, Chain: entity.ChainOsmosis},
		{Currency: "DOGE", Amount: 10, Chain: "Dogechain"},
		{Currency: "NEO", Amount: 0, Chain: entity.ChainNeo},
		{Currency: "ZIL", Amount: 7, Chain: entity.ChainZilliqa},
	}}
	prices := fakePriceSource{table: entity.PriceTable{"ETH": 2000, "OSMO": 100}}

	svc := NewRankingService(balances, prices, logger.NewNop(), metrics.New(prometheus.NewRegistry()))
	view, err := svc.RankedView(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Balances, 3)
	assert.Equal(t, "OSMO", view.Balances[0].Currency)
	assert.Equal(t, "ETH", view.Balances[1].Currency)
	assert.Equal(t, "ZIL", view.Balances[2].Currency)
	assert.Nil(t, view.Balances[2].USDValue)

	assert.Equal(t, 3, view.Summary.Rows)
	assert.Equal(t, 2, view.Summary.Priced)
	assert.Equal(t, 1, view.Summary.Unpriced)
	assert.InDelta(t, 4050, view.Summary.TotalUSD, 1e-9)
	assert.Equal(t, []string{"ZIL"}, view.Summary.UnpricedCurrencies)
}

func TestRankingServiceErrors(t *testing.T) {
	sourceErr := errors.New("boom")

	t.Run("balances", func(t *testing.T) {
		svc := NewRankingService(fakeBalanceSource{err: sourceErr}, fakePriceSource{}, logger.NewNop(), nil)
		_, err := svc.RankedView(context.Background())
		assert.ErrorIs(t, err, sourceErr)
		assert.Contains(t, err.Error(), "failed to get balances")
	})
	t.Run("prices", func(t *testing.T) {
		svc := NewRankingService(fakeBalanceSource{}, fakePriceSource{err: sourceErr}, logger.NewNop(), nil)
		_, err := svc.RankedView(context.Background())
		assert.ErrorIs(t, err, sourceErr)
		assert.Contains(t, err.Error(), "failed to get prices")
	})
}

func TestRankingServiceEmpty(t *testing.T) {
	svc := NewRankingService(fakeBalanceSource{}, fakePriceSource{}, logger.NewNop(), nil)
	view, err := svc.RankedView(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, view.Balances)
	assert.Empty(t, view.Balances)
	assert.Zero(t, view.Summary.TotalUSD)
}
