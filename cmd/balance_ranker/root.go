package main

import (
	"fmt"

	"balance_ranker/internal/infrastructure/configloader"
	"balance_ranker/internal/pkg/logger"
	"balance_ranker/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.yml"

// runtimeContext is filled by the root command before any sub-command runs.
type runtimeContext struct {
	configPath string
	cfg        *configloader.Config
	zapLogger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	rt := &runtimeContext{}

	root := &cobra.Command{
		Use:           "balance_ranker",
		Short:         "Rank wallet balances by chain priority and value them in USD",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configloader.Load(rt.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			zapLogger, err := logger.Init(cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			rt.cfg = cfg
			rt.zapLogger = zapLogger
			logger.Debug("Configuration loaded", "path", rt.configPath)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.zapLogger != nil {
				_ = rt.zapLogger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rt.configPath, "config", utils.GetEnv("CONFIG_PATH", defaultConfigPath),
		"config file, E.g. `./config/config.yml` (env CONFIG_PATH)")

	root.AddCommand(
		newServeCommand(rt),
		newRankCommand(rt),
	)
	return root
}
