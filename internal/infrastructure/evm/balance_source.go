package evm

import (
	"context"
	"fmt"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// BalanceSource reports the native balance of one wallet on each configured network.
type BalanceSource struct {
	walletAddress string
	networks      []entity.NetworkDefinition
	provider      port.NativeBalanceClientProvider
	logger        port.Logger
}

// NewBalanceSource creates a balance source for walletAddress over networks.
func NewBalanceSource(
	walletAddress string,
	networks []entity.NetworkDefinition,
	provider port.NativeBalanceClientProvider,
	l port.Logger,
) *BalanceSource {
	return &BalanceSource{
		walletAddress: walletAddress,
		networks:      networks,
		provider:      provider,
		logger:        l.With("component", "EVMBalanceSource"),
	}
}

// GetBalances implements port.BalanceSource. Records follow the order of the
// configured networks; zero balances are reported as they are.
func (s *BalanceSource) GetBalances(ctx context.Context) ([]entity.WalletBalance, error) {
	balances := make([]entity.WalletBalance, len(s.networks))

	g, gCtx := errgroup.WithContext(ctx)
	for i, netDef := range s.networks {
		g.Go(func() error {
			client, err := s.provider.GetClient(netDef)
			if err != nil {
				return err
			}
			raw, err := client.GetNativeBalance(gCtx, s.walletAddress)
			if err != nil {
				return err
			}
			balances[i] = entity.WalletBalance{
				Currency: netDef.NativeSymbol,
				Amount:   ToAmount(raw, netDef.Decimals),
				Chain:    netDef.Chain,
			}
			s.logger.Debug("Fetched native balance", "network", netDef.Name, "raw", raw.String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch EVM balances for %s: %w", s.walletAddress, err)
	}
	return balances, nil
}
