package configloader

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/infrastructure/balanceloader"
	"balance_ranker/internal/infrastructure/evm"
	"balance_ranker/internal/infrastructure/pricefeed"
	"balance_ranker/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int    `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds  int    `yaml:"idleTimeoutSeconds"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// PriceFeedConfig holds the price feed endpoint settings.
type PriceFeedConfig struct {
	URL                  string `yaml:"url"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// RequestTimeout returns the configured timeout as a duration.
func (c PriceFeedConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}

// BalancesConfig points at the YAML balance file.
type BalancesConfig struct {
	File string `yaml:"file"`
}

// EVMNetworkConfig enables native balance lookups on one EVM chain.
// An empty RPCURL uses the chain's built-in public endpoints.
type EVMNetworkConfig struct {
	Chain        entity.Chain `yaml:"chain"`
	RPCURL       string       `yaml:"rpcURL"`
	NativeSymbol string       `yaml:"nativeSymbol"`
	Decimals     uint8        `yaml:"decimals"`
}

// EVMConfig holds the on-chain balance source settings. It is disabled when
// WalletAddress is empty.
type EVMConfig struct {
	WalletAddress         string             `yaml:"walletAddress"`
	RPCCallTimeoutSeconds int                `yaml:"rpcCallTimeoutSeconds"`
	Networks              []EVMNetworkConfig `yaml:"networks"`
}

// Enabled reports whether on-chain balances should be read.
func (c EVMConfig) Enabled() bool {
	return c.WalletAddress != "" && len(c.Networks) > 0
}

// RateLimitConfig holds the per-client HTTP rate limit.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requestsPerMinute"`
	Burst             int `yaml:"burst"`
	IdleExpiryMinutes int `yaml:"idleExpiryMinutes"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	PriceFeed PriceFeedConfig `yaml:"priceFeed"`
	Balances  BalancesConfig  `yaml:"balances"`
	EVM       EVMConfig       `yaml:"evm"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// Load reads the YAML configuration file from the given path, unmarshals it,
// fills defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 30
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.PriceFeed.URL == "" {
		cfg.PriceFeed.URL = pricefeed.DefaultURL
	}
	if cfg.PriceFeed.RequestTimeoutMillis == 0 {
		cfg.PriceFeed.RequestTimeoutMillis = 10000
	}

	if cfg.Balances.File == "" {
		cfg.Balances.File = balanceloader.DefaultFilePath
	}

	if cfg.EVM.RPCCallTimeoutSeconds <= 0 {
		cfg.EVM.RPCCallTimeoutSeconds = 10
	}

	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 120
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 20
	}
	if cfg.RateLimit.IdleExpiryMinutes == 0 {
		cfg.RateLimit.IdleExpiryMinutes = 10
	}
}

// Validate reports every problem of the configuration at once.
func (cfg *Config) Validate() error {
	var errs []error

	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if cfg.PriceFeed.RequestTimeoutMillis < 0 {
		errs = append(errs, errors.New("priceFeed.requestTimeoutMillis must be positive"))
	}

	if cfg.EVM.WalletAddress != "" && !common.IsHexAddress(cfg.EVM.WalletAddress) {
		errs = append(errs, fmt.Errorf("evm.walletAddress: %q is not a hex address", cfg.EVM.WalletAddress))
	}
	seen := make(map[entity.Chain]struct{}, len(cfg.EVM.Networks))
	for i, network := range cfg.EVM.Networks {
		if !slices.Contains(evm.SupportedChains(), network.Chain) {
			errs = append(errs, fmt.Errorf("evm.networks[%d]: unsupported chain %q", i, network.Chain))
		}
		if _, dup := seen[network.Chain]; dup {
			errs = append(errs, fmt.Errorf("evm.networks[%d]: chain %s listed twice", i, network.Chain))
		}
		seen[network.Chain] = struct{}{}
	}

	if cfg.RateLimit.RequestsPerMinute < 0 || cfg.RateLimit.Burst < 0 || cfg.RateLimit.IdleExpiryMinutes < 0 {
		errs = append(errs, errors.New("rateLimit values must be positive"))
	}

	return errors.Join(errs...)
}
