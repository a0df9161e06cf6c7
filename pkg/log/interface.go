// Package log provides the structured logging interface used by simplereg.
//
// The Logger interface is slog-compatible so that callers can plug in the
// zerolog backend shipped here (NewZerologLogger), the slog JSON setup
// (SetupLogger), or their own implementation. The library itself is silent
// until a logger is installed with SetLogger.
//
// Example usage:
//
//	log.SetLogger(log.NewZerologLogger(os.Stderr, log.LevelDebug))
//	logger := log.GetLogger().With(log.ModelNameKey, "Regression")
//	logger.Debug("fit completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, len(x),
//	)

package log

import (
	"context"
)

// Logger is the structured logger used across simplereg. Fields are
// alternating key/value pairs as in log/slog. When the first field passed to
// Debug or Error is an error value, backends record it as the error of the
// entry together with its stack trace and error code:
//
//	logger.Error("fit failed", err, log.SamplesKey, n)
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a logger that adds fields to every entry.
	With(fields ...any) Logger

	// Enabled reports whether entries at level are written.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a minimum severity. The values match slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
