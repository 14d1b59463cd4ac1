package ranking

import (
	"math"
	"testing"

	"balance_ranker/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balance(currency string, amount float64, chain entity.Chain) entity.WalletBalance {
	return entity.WalletBalance{Currency: currency, Amount: amount, Chain: chain}
}

func TestRankScenario(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("ETH", 2, entity.ChainEthereum),
		balance("OSMO", 5, entity.ChainOsmosis),
		balance("FOO", 3, entity.Chain("UnknownChain")),
		balance("ARB", 0, entity.ChainArbitrum),
	}
	prices := entity.PriceTable{"ETH": 2000, "OSMO": 10}

	rows := Rank(balances, prices)

	require.Len(t, rows, 2)

	assert.Equal(t, "OSMO", rows[0].Currency)
	assert.Equal(t, 100, rows[0].Priority)
	require.NotNil(t, rows[0].USDValue)
	assert.Equal(t, 50.0, *rows[0].USDValue)
	assert.Equal(t, "5", rows[0].FormattedAmount)

	assert.Equal(t, "ETH", rows[1].Currency)
	assert.Equal(t, 50, rows[1].Priority)
	require.NotNil(t, rows[1].USDValue)
	assert.Equal(t, 4000.0, *rows[1].USDValue)
	assert.Equal(t, "2", rows[1].FormattedAmount)
}

func TestRankEmpty(t *testing.T) {
	t.Run("nil_input", func(t *testing.T) {
		rows := Rank(nil, nil)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
	t.Run("everything_dropped", func(t *testing.T) {
		rows := Rank([]entity.WalletBalance{balance("FOO", 1, "Solana"), balance("ETH", 0, entity.ChainEthereum)}, entity.PriceTable{})
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestRankFilter(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("A", 1, entity.Chain("Solana")),
		balance("B", 1, entity.Chain("osmosis")),
		balance("C", 0, entity.ChainOsmosis),
		balance("D", -4, entity.ChainNeo),
		balance("E", math.NaN(), entity.ChainEthereum),
		balance("F", math.Inf(1), entity.ChainEthereum),
		balance("G", 0.0001, entity.ChainZilliqa),
	}

	rows := Rank(balances, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "G", rows[0].Currency)

	assert.Equal(t, map[DropReason]int{
		DropUnknownChain:  2,
		DropInvalidAmount: 4,
	}, CountDropped(balances))
}

func TestRankOrder(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("NEO1", 1, entity.ChainNeo),
		balance("ARB", 1, entity.ChainArbitrum),
		balance("ZIL", 1, entity.ChainZilliqa),
		balance("OSMO", 1, entity.ChainOsmosis),
		balance("NEO2", 1, entity.ChainNeo),
		balance("ETH", 1, entity.ChainEthereum),
	}

	rows := Rank(balances, nil)

	require.Len(t, rows, len(balances))
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Priority, rows[i].Priority)
	}
	// ties keep input order
	currencies := make([]string, 0, len(rows))
	for _, row := range rows {
		currencies = append(currencies, row.Currency)
	}
	assert.Equal(t, []string{"OSMO", "ETH", "ARB", "NEO1", "ZIL", "NEO2"}, currencies)
}

func TestRankDuplicateCurrencies(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("USDC", 10, entity.ChainArbitrum),
		balance("USDC", 5, entity.ChainEthereum),
	}
	rows := Rank(balances, entity.PriceTable{"USDC": 1})

	require.Len(t, rows, 2)
	assert.Equal(t, entity.ChainEthereum, rows[0].Chain)
	assert.Equal(t, 5.0, *rows[0].USDValue)
	assert.Equal(t, entity.ChainArbitrum, rows[1].Chain)
	assert.Equal(t, 10.0, *rows[1].USDValue)
}

func TestRankMissingPrice(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("ETH", 1.5, entity.ChainEthereum),
		balance("LUNA", 3, entity.ChainOsmosis),
	}

	rows := Rank(balances, entity.PriceTable{"ETH": 1800.25})

	require.Len(t, rows, 2)
	assert.Equal(t, "LUNA", rows[0].Currency)
	assert.Nil(t, rows[0].USDValue)
	assert.False(t, rows[0].Priced())
	assert.Equal(t, "3", rows[0].FormattedAmount)

	require.NotNil(t, rows[1].USDValue)
	assert.Equal(t, 1800.25*1.5, *rows[1].USDValue)
}

func TestRankExactValuation(t *testing.T) {
	testcases := []struct {
		price  float64
		amount float64
	}{
		{0.1, 3},
		{1.0000001, 123456.789},
		{26002.82202020202, 0.00001},
		{1e-9, 1e12},
	}
	for _, tc := range testcases {
		rows := Rank([]entity.WalletBalance{balance("X", tc.amount, entity.ChainEthereum)}, entity.PriceTable{"X": tc.price})
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].USDValue)
		assert.Equal(t, tc.price*tc.amount, *rows[0].USDValue)
	}
}

func TestRankIdempotent(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("ETH", 2, entity.ChainEthereum),
		balance("OSMO", 5, entity.ChainOsmosis),
		balance("ZIL", 7, entity.ChainZilliqa),
		balance("NEO", 1, entity.ChainNeo),
		balance("BAD", 1, "Unknown"),
	}
	prices := entity.PriceTable{"ETH": 2000, "OSMO": 10, "NEO": 8}

	assert.Equal(t, Rank(balances, prices), Rank(balances, prices))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	balances := []entity.WalletBalance{
		balance("NEO", 1, entity.ChainNeo),
		balance("BAD", 1, "Unknown"),
		balance("OSMO", 5, entity.ChainOsmosis),
	}
	snapshot := append([]entity.WalletBalance(nil), balances...)
	prices := entity.PriceTable{"OSMO": 10}

	_ = Rank(balances, prices)

	assert.Equal(t, snapshot, balances)
	assert.Equal(t, entity.PriceTable{"OSMO": 10}, prices)
}

func TestFormatAmount(t *testing.T) {
	testcases := []struct {
		amount   float64
		expected string
	}{
		{2, "2"},
		{0.5, "0.5"},
		{1234.5678, "1234.5678"},
		{0.1, "0.1"},
		{0.0000001, "0.0000001"},
		{1e21, "1000000000000000000000"},
		{math.NaN(), "n/a"},
	}
	for _, tc := range testcases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount))
		})
	}
}

func TestSummarize(t *testing.T) {
	rows := Rank([]entity.WalletBalance{
		balance("ETH", 2, entity.ChainEthereum),
		balance("OSMO", 5, entity.ChainOsmosis),
		balance("LUNA", 1, entity.ChainOsmosis),
		balance("LUNA", 2, entity.ChainNeo),
	}, entity.PriceTable{"ETH": 2000, "OSMO": 10})

	summary := Summarize(rows)

	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 2, summary.Priced)
	assert.Equal(t, 2, summary.Unpriced)
	assert.Equal(t, 4050.0, summary.TotalUSD)
	assert.Equal(t, []string{"LUNA"}, summary.UnpricedCurrencies)

	empty := Summarize(nil)
	assert.Equal(t, entity.ValuationSummary{}, empty)
}

func TestRankValuationOverflow(t *testing.T) {
	rows := Rank([]entity.WalletBalance{
		balance("HUGE", 1e300, entity.ChainEthereum),
		balance("ETH", 2, entity.ChainEthereum),
	}, entity.PriceTable{"HUGE": 1e10, "ETH": 2000})

	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].USDValue)
	assert.Equal(t, "HUGE", rows[0].Currency)
	require.NotNil(t, rows[1].USDValue)
	assert.Equal(t, 4000.0, *rows[1].USDValue)

	summary := Summarize(rows)
	assert.Equal(t, 1, summary.Priced)
	assert.Equal(t, []string{"HUGE"}, summary.UnpricedCurrencies)
	assert.Equal(t, 4000.0, summary.TotalUSD)
	assert.False(t, summary.TotalUSDOverflow)

	_, err := jsoniter.Marshal(entity.RankedView{Balances: rows, Summary: summary})
	assert.NoError(t, err)
}

func TestSummarizeTotalOverflow(t *testing.T) {
	rows := Rank([]entity.WalletBalance{
		balance("A", 1e308, entity.ChainOsmosis),
		balance("B", 1e308, entity.ChainOsmosis),
	}, entity.PriceTable{"A": 1, "B": 1})
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].USDValue)
	require.NotNil(t, rows[1].USDValue)

	summary := Summarize(rows)
	assert.Equal(t, 2, summary.Priced)
	assert.True(t, summary.TotalUSDOverflow)
	assert.Equal(t, math.MaxFloat64, summary.TotalUSD)

	_, err := jsoniter.Marshal(summary)
	assert.NoError(t, err)
}
