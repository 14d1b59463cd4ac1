package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"balance_ranker/internal/infrastructure/restapi"
	"balance_ranker/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(rt *runtimeContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), rt)
		},
	}
}

func runServe(ctx context.Context, rt *runtimeContext) error {
	cfg := rt.cfg

	app, err := newApplication(cfg, rt.zapLogger)
	if err != nil {
		return err
	}
	defer app.Close()

	if !strings.EqualFold(cfg.Logging.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := restapi.NewClientRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
		time.Duration(cfg.RateLimit.IdleExpiryMinutes)*time.Minute,
	)
	handler := restapi.NewHandler(app.rankingService, app.priceService, app.swapService, app.logger)
	router := restapi.SetupRouter(handler, rt.zapLogger, limiter, app.registry)

	srv := &http.Server{
		Addr:         ":" + strings.TrimPrefix(cfg.Server.Port, ":"),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server exited gracefully")
	return nil
}
