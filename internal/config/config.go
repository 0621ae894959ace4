// Package config loads the relay configuration from the environment.
//
// Values come from RELAY_* variables, optionally seeded from a .env file in
// the working directory. Variables already set in the environment win over
// the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/blockrelay/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. RELAY_ORIGIN_ENDPOINT.
const Prefix = "relay"

// Chain configures one chain connection.
type Chain struct {
	Endpoint        string        `envconfig:"ENDPOINT" validate:"required,url"`
	Validator       string        `envconfig:"VALIDATOR" validate:"required,eth_addr"`
	PollingInterval time.Duration `envconfig:"POLLING_INTERVAL" default:"2s" validate:"gt=0"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RetryMax        int           `envconfig:"RETRY_MAX" default:"4" validate:"gte=0"`

	// Password unlocks the validator account. When empty the operator is
	// prompted on the terminal.
	Password string `envconfig:"PASSWORD" secret:"true"`

	// Headers are sent with every node request, as "name:value" pairs.
	Headers map[string]string `envconfig:"HEADERS" secret:"true"`

	// Contracts lists "name:address:abi_path" entries, comma separated.
	Contracts []string `envconfig:"CONTRACTS"`
}

type Redis struct {
	Enabled  bool   `envconfig:"ENABLED"`
	Addr     string `envconfig:"ADDR" validate:"required_if=Enabled true"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD" secret:"true"`
	DB       int    `envconfig:"DB" validate:"gte=0"`

	// Namespace prefixes every key, e.g. "relay:head:origin".
	Namespace string `envconfig:"NAMESPACE" default:"relay" validate:"required"`
}

type Kafka struct {
	Enabled     bool     `envconfig:"ENABLED"`
	Brokers     []string `envconfig:"BROKERS" validate:"required_if=Enabled true"`
	Topic       string   `envconfig:"TOPIC" default:"blockrelay.blocks" validate:"required"`
	CreateTopic bool     `envconfig:"CREATE_TOPIC"`
}

// Config is the full relay configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blockrelay" validate:"required"`
	MetricsAddr      string `envconfig:"METRICS_ADDR" default:":9090"`

	// SchedulerLimit bounds concurrent reactor tasks; zero means unbounded.
	// Tasks submitted while the limit is reached are dropped.
	SchedulerLimit int `envconfig:"SCHEDULER_LIMIT" default:"64" validate:"gte=0"`

	Origin    Chain `envconfig:"ORIGIN"`
	Auxiliary Chain `envconfig:"AUXILIARY"`
	Redis     Redis `envconfig:"REDIS"`
	Kafka     Kafka `envconfig:"KAFKA"`
}

// Load reads the optional env files (".env" when none is given), processes
// the RELAY_* variables and validates the result.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
