package entity

// NetworkDefinition holds the RPC settings of an EVM network used as a balance source.
type NetworkDefinition struct {
	Chain           Chain    `json:"chain" yaml:"chain"`
	Name            string   `json:"name" yaml:"name"`
	NativeSymbol    string   `json:"nativeSymbol" yaml:"nativeSymbol"`
	Decimals        uint8    `json:"decimals" yaml:"decimals"` // native token decimals
	PrimaryRPCURL   string   `json:"primaryRpcUrl" yaml:"primaryRpcUrl"`
	FallbackRPCURLs []string `json:"fallbackRpcUrls" yaml:"fallbackRpcUrls"`
}
