package balanceloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balances.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileLoaderGetBalances(t *testing.T) {
	path := writeFile(t, `
balances:
  - currency: OSMO
    amount: 50
    chain: Osmosis
  - currency: ETH
    amount: 2
    chain: Ethereum
  - currency: DOGE
    amount: 10
    chain: Dogechain
  - currency: NEO
    amount: -3
    chain: Neo
  - currency: "  "
    amount: 1
    chain: Neo
`)

	balances, err := NewFileLoader(path, logger.NewNop()).GetBalances(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.WalletBalance{
		{Currency: "OSMO", Amount: 50, Chain: entity.ChainOsmosis},
		{Currency: "ETH", Amount: 2, Chain: entity.ChainEthereum},
		{Currency: "DOGE", Amount: 10, Chain: "Dogechain"},
		{Currency: "NEO", Amount: -3, Chain: entity.ChainNeo},
	}, balances)
}

func TestFileLoaderEmptyFile(t *testing.T) {
	balances, err := NewFileLoader(writeFile(t, ""), logger.NewNop()).GetBalances(context.Background())
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestFileLoaderErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.yml"), logger.NewNop()).GetBalances(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := NewFileLoader(writeFile(t, "balances: {currency"), logger.NewNop()).GetBalances(context.Background())
		assert.ErrorContains(t, err, "failed to unmarshal balance file")
	})
}

func TestNewFileLoaderDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFilePath, NewFileLoader("", logger.NewNop()).filePath)
}
