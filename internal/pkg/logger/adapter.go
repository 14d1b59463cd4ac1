package logger

import (
	"log/slog"

	"balance_ranker/internal/app/port"
)

// slogAdapter implements port.Logger on top of a slog logger.
type slogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns a port.Logger writing through the global logger.
// Call it after Init so records reach zap.
func NewSlogAdapter() port.Logger {
	ensureInitialized()
	return &slogAdapter{logger: globalLogger}
}

// NewNop returns a port.Logger that discards everything.
func NewNop() port.Logger {
	return &slogAdapter{logger: slog.New(discardHandler{})}
}

func (a *slogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

func (a *slogAdapter) With(args ...any) port.Logger {
	return &slogAdapter{logger: a.logger.With(args...)}
}
