// Package config loads the application configuration from environment
// variables and validates it before the rest of the system boots.
package config

import (
	"github.com/gabapcia/tokenwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix shared by all tokenwatch environment variables
// (e.g., TOKENWATCH_RPC_ENDPOINT).
const envPrefix = "tokenwatch"

// Config holds every runtime setting the application needs. Values are
// sourced from environment variables and validated on load.
type Config struct {
	// LogLevel controls the minimum severity emitted by the logger
	// (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TelemetryEnabled turns on OpenTelemetry traces, metrics and log
	// export. Requires an OTLP collector reachable via the standard
	// OTEL_EXPORTER_* environment variables.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Network is the blockchain network the pipeline ingests.
	Network string `envconfig:"NETWORK" default:"ethereum"`

	// RPCEndpoint is the JSON-RPC endpoint of an Ethereum compatible node.
	RPCEndpoint string `envconfig:"RPC_ENDPOINT" validate:"required"`

	// Redis connection settings. Redis backs the wallet registry, the
	// chainstream checkpoint and the block idempotency guard.
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Telegram delivery settings for activity notifications.
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" validate:"required"`
	TelegramChatID   string `envconfig:"TELEGRAM_CHAT_ID" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
