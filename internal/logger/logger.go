// Package logger configures the application's logging.
//
// It uses zerolog for structured logging. The root logger is built once
// at startup from config and passed down through the server container;
// request-scoped child loggers are derived by middleware.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the root application logger.
//
// Format:
//   - "console": human-friendly output, intended for local development.
//   - anything else: plain JSON to stderr, intended for log pipelines.
//
// Unknown levels fall back to info rather than failing startup; a bad
// log level should never take the API down.
func New(level, format, env string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().
		Timestamp().
		Str("service", "titanic-api").
		Str("env", env).
		Logger()
}
