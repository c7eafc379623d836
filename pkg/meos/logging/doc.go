// Package logging provides a minimal logging facade for the meos wrapper.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New adapts a *slog.Logger; nil selects slog.Default():
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	cfg := meos.Config{Logger: logging.New(slog.New(handler))}
//
// The wrapper logs lifecycle transitions at Info and every error raised by
// the native library at Debug, with the native function name and code.
//
// Temporal values print as WKT or MF-JSON, which can be very long. Use
// Truncated to log a bounded prefix:
//
//	logger.Debug(ctx, "parsed trip", logging.Truncated("wkt", wkt, 80))
package logging
