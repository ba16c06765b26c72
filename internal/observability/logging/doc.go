// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the dashboard.
//
// Key features:
//   - JSON output in production, text output on an interactive terminal
//   - Request ID propagation
//   - Context-aware logging
//   - LOG_LEVEL driven levels (debug, info, warn, error)
//
// Example usage:
//
//	logger := logging.New(os.Stdout, os.Getenv("LOG_LEVEL"))
//	logger.Info("dashboard started", slog.String("version", "1.0"))
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("rendering list")
//	}
package logging
