package main

import (
	"fmt"
	"time"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/app/service"
	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/infrastructure/balanceloader"
	"balance_ranker/internal/infrastructure/configloader"
	"balance_ranker/internal/infrastructure/evm"
	"balance_ranker/internal/infrastructure/pricefeed"
	"balance_ranker/internal/pkg/logger"
	"balance_ranker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// application holds the wired services shared by the sub-commands.
type application struct {
	logger         port.Logger
	registry       *prometheus.Registry
	priceService   port.PriceService
	rankingService port.RankingService
	swapService    port.SwapService
	closers        []func()
}

func newApplication(cfg *configloader.Config, zapLogger *zap.Logger) (*application, error) {
	appLogger := logger.NewSlogAdapter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	feed := pricefeed.NewClient(cfg.PriceFeed.URL, cfg.PriceFeed.RequestTimeout(), zapLogger)
	priceService := service.NewPriceService(feed, appLogger, m)

	app := &application{
		logger:       appLogger,
		registry:     registry,
		priceService: priceService,
	}

	sources := []port.BalanceSource{balanceloader.NewFileLoader(cfg.Balances.File, appLogger)}
	if cfg.EVM.Enabled() {
		networks := make([]entity.NetworkDefinition, 0, len(cfg.EVM.Networks))
		for _, n := range cfg.EVM.Networks {
			def, err := evm.DefinitionFor(evm.NetworkOverride{
				Chain:        n.Chain,
				RPCURL:       n.RPCURL,
				NativeSymbol: n.NativeSymbol,
				Decimals:     n.Decimals,
			})
			if err != nil {
				return nil, fmt.Errorf("evm network %s: %w", n.Chain, err)
			}
			networks = append(networks, def)
		}

		provider := evm.NewClientProvider(time.Duration(cfg.EVM.RPCCallTimeoutSeconds)*time.Second, appLogger)
		if c, ok := provider.(interface{ Close() }); ok {
			app.closers = append(app.closers, c.Close)
		}
		sources = append(sources, evm.NewBalanceSource(cfg.EVM.WalletAddress, networks, provider, appLogger))
		appLogger.Info("On-chain balances enabled", "wallet", cfg.EVM.WalletAddress, "networks", len(networks))
	} else if cfg.EVM.WalletAddress != "" {
		logger.Warn("EVM wallet configured without networks, on-chain balances disabled", "wallet", cfg.EVM.WalletAddress)
	}

	balances := service.NewCompositeBalanceSource(appLogger, sources...)
	app.rankingService = service.NewRankingService(balances, priceService, appLogger, m)
	app.swapService = service.NewSwapService(balances, priceService, appLogger)
	return app, nil
}

func (a *application) Close() {
	for _, c := range a.closers {
		c()
	}
}
