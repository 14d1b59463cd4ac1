package evm

import (
	"fmt"

	"balance_ranker/internal/domain/entity"
)

// Built-in definitions of the EVM chains the ranking knows about.
var (
	Ethereum = entity.NetworkDefinition{
		Chain:           entity.ChainEthereum,
		Name:            "Ethereum Mainnet",
		NativeSymbol:    "ETH",
		Decimals:        18,
		PrimaryRPCURL:   "https://ethereum-rpc.publicnode.com",
		FallbackRPCURLs: []string{"https://rpc.ankr.com/eth", "https://ethereum.publicnode.com"},
	}
	Arbitrum = entity.NetworkDefinition{
		Chain:           entity.ChainArbitrum,
		Name:            "Arbitrum One",
		NativeSymbol:    "ETH",
		Decimals:        18,
		PrimaryRPCURL:   "https://arb1.arbitrum.io/rpc",
		FallbackRPCURLs: []string{"https://arbitrum.llamarpc.com", "https://arbitrum.publicnode.com"},
	}
)

var builtinDefinitions = map[entity.Chain]entity.NetworkDefinition{
	entity.ChainEthereum: Ethereum,
	entity.ChainArbitrum: Arbitrum,
}

// NetworkOverride carries the configured settings of one network. Empty fields
// keep the built-in value.
type NetworkOverride struct {
	Chain        entity.Chain
	RPCURL       string
	NativeSymbol string
	Decimals     uint8
}

// DefinitionFor returns the built-in definition of chain with override applied.
// A configured RPC URL becomes the primary endpoint and the built-in endpoints
// remain as fallbacks.
func DefinitionFor(override NetworkOverride) (entity.NetworkDefinition, error) {
	def, ok := builtinDefinitions[override.Chain]
	if !ok {
		return entity.NetworkDefinition{}, fmt.Errorf("chain %q is not an EVM chain supported for balance lookups", override.Chain)
	}

	if override.RPCURL != "" && override.RPCURL != def.PrimaryRPCURL {
		fallbacks := make([]string, 0, len(def.FallbackRPCURLs)+1)
		fallbacks = append(fallbacks, def.PrimaryRPCURL)
		fallbacks = append(fallbacks, def.FallbackRPCURLs...)
		def.PrimaryRPCURL = override.RPCURL
		def.FallbackRPCURLs = fallbacks
	} else {
		def.FallbackRPCURLs = append([]string(nil), def.FallbackRPCURLs...)
	}
	if override.NativeSymbol != "" {
		def.NativeSymbol = override.NativeSymbol
	}
	if override.Decimals > 0 {
		def.Decimals = override.Decimals
	}
	return def, nil
}

// SupportedChains lists the chains DefinitionFor accepts.
func SupportedChains() []entity.Chain {
	return []entity.Chain{entity.ChainEthereum, entity.ChainArbitrum}
}
