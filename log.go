package nestedfade

import (
	"log/slog"
	"os"
)

// logger receives diagnostics: adapter misconfiguration, script errors and
// debug-mode warnings.
var logger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("component", "nestedfade")
}

// SetLogger replaces the package logger. Passing nil restores the default
// text logger on stderr.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}
