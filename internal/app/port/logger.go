package port

// Logger is the structured logger injected into services.
// Arguments are alternating keys and values, as in log/slog.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
