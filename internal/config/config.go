// Package config manages environment variables.
//
// It reads variables from the process environment (optionally loaded
// from a `.env` file), maps them into structured Go types, and
// validates that required values are present so the app fails fast on
// bad or missing config.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; env
// vars use the ACADEMY_ prefix and "." nesting, so
// ACADEMY_SERVER.PORT -> server.port -> Config.Server.Port.
//
// Notification is a pointer because it is optional; defaults are
// injected when it is absent.
type Config struct {
	Primary      Primary             `koanf:"primary" validate:"required"`
	Server       ServerConfig        `koanf:"server" validate:"required"`
	Notification *NotificationConfig `koanf:"notification"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch logger output formats.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// NotificationConfig controls the background email notification job.
//
// DelaySeconds is the simulated delivery delay the job waits before
// sending. ResendAPIKey is optional: when empty, deliveries are logged
// instead of sent through the Resend API.
type NotificationConfig struct {
	DelaySeconds int    `koanf:"delay_seconds"`
	FromAddress  string `koanf:"from_address"`
	ResendAPIKey string `koanf:"resend_api_key"`
}

// DefaultNotificationConfig returns the notification settings used
// when none are configured: a five second simulated delivery delay and
// log-only delivery.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		DelaySeconds: 5,
		FromAddress:  "notifications@academy.local",
	}
}

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults.
//
// Behavior:
//   - Loads env vars with prefix ACADEMY_
//   - Converts env keys into koanf keys using "." nesting
//   - Validates required fields, logging fatally on failure so the
//     process never starts with broken config
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("ACADEMY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ACADEMY_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	// The decode hook lets list-valued settings (like the CORS origin
	// allow-list) be written as a single comma-separated env value.
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			WeaklyTypedInput: true,
			Result:           mainConfig,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Notification == nil {
		mainConfig.Notification = DefaultNotificationConfig()
	}
	if mainConfig.Notification.FromAddress == "" {
		mainConfig.Notification.FromAddress = DefaultNotificationConfig().FromAddress
	}

	return mainConfig, nil
}
