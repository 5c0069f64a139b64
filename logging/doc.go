// Package logging configures the structured slog logger used by the CLI.
//
// Logs are JSON on stderr. Every record carries the module name and version.
// The level comes from an explicit value (the --log-level flag) or, when that
// is empty, from the LOG_LEVEL environment variable; it defaults to INFO.
// Debug loggers also record source locations.
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("knapsack", version, *logLevel)
//	    slog.Info("menu generated", "items", len(menu))
//	}
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
package logging
