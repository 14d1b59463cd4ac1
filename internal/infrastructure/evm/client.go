package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client implements port.NativeBalanceClient for one EVM network.
type Client struct {
	ethClient      *ethclient.Client
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
}

// NewClient dials the primary RPC endpoint of netDef, then each fallback in turn
// until one connects.
func NewClient(netDef entity.NetworkDefinition, connectionTimeout, rpcCallTimeout time.Duration) (*Client, error) {
	rpcURLs := append([]string{netDef.PrimaryRPCURL}, netDef.FallbackRPCURLs...)
	var lastErr error

	for _, rpcURL := range rpcURLs {
		if rpcURL == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		client, err := ethclient.DialContext(ctx, rpcURL)
		cancel()

		if err == nil {
			return &Client{ethClient: client, netDef: netDef, rpcCallTimeout: rpcCallTimeout}, nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	if lastErr == nil {
		lastErr = errors.New("no RPC URL configured")
	}

	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", netDef.Name, lastErr)
}

var _ port.NativeBalanceClient = (*Client)(nil)

// GetNativeBalance implements port.NativeBalanceClient.
func (c *Client) GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("invalid wallet address %q", walletAddress)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	balance, err := c.ethClient.BalanceAt(callCtx, common.HexToAddress(walletAddress), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s balance on %s for %s: %w",
			c.netDef.NativeSymbol, c.netDef.Name, walletAddress, err)
	}
	return balance, nil
}

// Definition implements port.NativeBalanceClient.
func (c *Client) Definition() entity.NetworkDefinition {
	return c.netDef
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.ethClient.Close()
}
