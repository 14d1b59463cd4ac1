package port

import (
	"context"
	"math/big"

	"balance_ranker/internal/domain/entity"
)

// BalanceSource yields the wallet balances fed into the ranking pipeline.
type BalanceSource interface {
	GetBalances(ctx context.Context) ([]entity.WalletBalance, error)
}

// NativeBalanceClient reads native-currency balances from one EVM network.
type NativeBalanceClient interface {
	// GetNativeBalance returns the raw (smallest unit) native balance of walletAddress.
	GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error)

	// Definition returns the network definition associated with this client.
	Definition() entity.NetworkDefinition
}

// NativeBalanceClientProvider hands out clients per network.
type NativeBalanceClientProvider interface {
	GetClient(networkDefinition entity.NetworkDefinition) (NativeBalanceClient, error)
}
