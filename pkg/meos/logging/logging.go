package logging

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

// Logger is the subset of slog used by the meos wrapper. It is small so
// applications can plug in their own sink or a test recorder.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &slogLogger{logger: slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

const ellipsis = "..."

// Truncated returns an attribute holding at most n runes of value. WKT and
// MF-JSON payloads can be megabytes long; log a prefix instead.
func Truncated(key, value string, n int) slog.Attr {
	if n <= 0 {
		return slog.String(key, ellipsis)
	}
	if utf8.RuneCountInString(value) <= n {
		return slog.String(key, value)
	}
	i := 0
	for pos := range value {
		if i == n {
			return slog.String(key, value[:pos]+ellipsis)
		}
		i++
	}
	return slog.String(key, value)
}
