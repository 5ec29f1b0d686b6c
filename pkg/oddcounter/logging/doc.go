// Package logging provides a minimal logging facade for the oddcounter
// library and its tooling.
//
// The Logger interface wraps a subset of log/slog so applications can swap in
// their own implementation for testing or integration with an existing
// logging setup:
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "counter created", "start", 5)
package logging
