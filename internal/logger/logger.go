// Package logger configures the application's structured logging.
//
// It uses zerolog for all output. The format is keyed off the runtime
// environment: human-readable console output in development,
// machine-readable JSON everywhere else.
package logger

import (
	"os"

	"github.com/campushq/academy-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's root logger from config.
//
// Development gets a console writer at debug level; other
// environments get JSON at info level, suitable for log aggregators.
// Every entry carries a timestamp and the service name.
func New(cfg *config.Config) *zerolog.Logger {
	var logger zerolog.Logger

	switch cfg.Primary.Env {
	case "dev", "development":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Str("service", "academy-api").
			Logger()
	default:
		logger = zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("service", "academy-api").
			Logger()
	}

	return &logger
}
