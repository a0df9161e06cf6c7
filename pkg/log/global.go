package log

import (
	"context"
	"log/slog"
	"sync"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NopLogger{}
)

// GetLogger returns the process-wide logger. It is a NopLogger until SetLogger is called.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the process-wide logger. Passing nil restores the NopLogger.
func SetLogger(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if l == nil {
		l = NopLogger{}
	}
	globalLogger = l
}

// InstallWarnings routes warnings raised through pkg/errors.Warn to l at Warn level.
func InstallWarnings(l Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		l.Warn(w.Error(), ErrorCodeKey, "WARNING")
	})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }
func (NopLogger) Enabled(context.Context, Level) bool { return false }

// SlogLogger adapts a *slog.Logger to Logger. A leading error field is passed
// as ErrAttr so that ErrFmtHandler can attach its stack trace.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l; nil means slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, slogArgs(fields)...) }
func (s *SlogLogger) Info(msg string, fields ...any) { s.l.Info(msg, slogArgs(fields)...) }
func (s *SlogLogger) Warn(msg string, fields ...any) { s.l.Warn(msg, slogArgs(fields)...) }
func (s *SlogLogger) Error(msg string, fields ...any) { s.l.Error(msg, slogArgs(fields)...) }

func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{l: s.l.With(slogArgs(fields)...)}
}

func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

func slogArgs(fields []any) []any {
	if len(fields) == 0 {
		return fields
	}
	if err, ok := fields[0].(error); ok {
		return append([]any{ErrAttr(err)}, fields[1:]...)
	}
	return fields
}
