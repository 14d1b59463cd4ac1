package evm

import (
	"fmt"
	"sync"
	"time"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"
)

const defaultConnectionTimeout = 10 * time.Second

// clientProvider implements port.NativeBalanceClientProvider and keeps one
// client per chain.
type clientProvider struct {
	clients           map[entity.Chain]*Client
	mu                sync.Mutex
	logger            port.Logger
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewClientProvider creates a new client provider.
func NewClientProvider(rpcCallTimeout time.Duration, l port.Logger) port.NativeBalanceClientProvider {
	return &clientProvider{
		clients:           make(map[entity.Chain]*Client),
		logger:            l.With("component", "EVMClientProvider"),
		connectionTimeout: defaultConnectionTimeout,
		rpcCallTimeout:    rpcCallTimeout,
	}
}

// GetClient implements port.NativeBalanceClientProvider.
func (p *clientProvider) GetClient(netDef entity.NetworkDefinition) (port.NativeBalanceClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, exists := p.clients[netDef.Chain]; exists {
		return client, nil
	}

	p.logger.Info("Creating new EVM client", "network", netDef.Name, "rpc_primary", netDef.PrimaryRPCURL)
	client, err := NewClient(netDef, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.logger.Error("Failed to create EVM client", "network", netDef.Name, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", netDef.Name, err)
	}

	p.clients[netDef.Chain] = client
	return client, nil
}

// Close closes every client created so far.
func (p *clientProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for chain, client := range p.clients {
		client.Close()
		delete(p.clients, chain)
	}
}
