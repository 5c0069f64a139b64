package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable consulted when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// ParseLogLevel maps a level name to slog.Level. Unknown or empty names map to Info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// resolveLevel prefers the explicit level and falls back to LOG_LEVEL.
func resolveLevel(level string) slog.Level {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(EnvLogLevel)
	}

	return ParseLogLevel(level)
}

// NewLogger builds a JSON logger writing to w with module/version attributes.
func NewLogger(w io.Writer, module, version, level string) *slog.Logger {
	var lvl = resolveLevel(level)
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// NewStructuredLogger builds a JSON logger on stderr.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return NewLogger(os.Stderr, module, version, level)
}

// SetDefaultStructuredLoggerWithLevel installs a stderr logger at level as the
// slog default.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// SetDefaultStructuredLoggerWithWriter installs a logger on w as the slog default.
func SetDefaultStructuredLoggerWithWriter(w io.Writer, module, version, level string) {
	slog.SetDefault(NewLogger(w, module, version, level))
}
