package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabapcia/blockrelay/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	originValidator    = "0x00000000000000000000000000000000000000a1"
	auxiliaryValidator = "0x00000000000000000000000000000000000000b1"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("RELAY_ORIGIN_ENDPOINT", "http://origin:8545")
	t.Setenv("RELAY_ORIGIN_VALIDATOR", originValidator)
	t.Setenv("RELAY_AUXILIARY_ENDPOINT", "http://auxiliary:8545")
	t.Setenv("RELAY_AUXILIARY_VALIDATOR", auxiliaryValidator)
}

// unset removes key for the duration of the test, restoring it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "blockrelay", cfg.ServiceName)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
		assert.Equal(t, 64, cfg.SchedulerLimit)
		assert.False(t, cfg.TelemetryEnabled)

		assert.Equal(t, "http://origin:8545", cfg.Origin.Endpoint)
		assert.Equal(t, originValidator, cfg.Origin.Validator)
		assert.Equal(t, 2*time.Second, cfg.Origin.PollingInterval)
		assert.Equal(t, 30*time.Second, cfg.Origin.Timeout)
		assert.Equal(t, 4, cfg.Origin.RetryMax)
		assert.Empty(t, cfg.Origin.Password)
		assert.Equal(t, auxiliaryValidator, cfg.Auxiliary.Validator)

		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "relay", cfg.Redis.Namespace)
		assert.False(t, cfg.Kafka.Enabled)
		assert.Equal(t, "blockrelay.blocks", cfg.Kafka.Topic)
	})

	t.Run("reads every section", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_LOG_LEVEL", "debug")
		t.Setenv("RELAY_ORIGIN_POLLING_INTERVAL", "500ms")
		t.Setenv("RELAY_ORIGIN_PASSWORD", "origin-secret")
		t.Setenv("RELAY_ORIGIN_CONTRACTS", "bridge:0x01:a.json,token:0x02:b.json")
		t.Setenv("RELAY_AUXILIARY_HEADERS", "X-Api-Key:abc123")
		t.Setenv("RELAY_REDIS_ENABLED", "true")
		t.Setenv("RELAY_REDIS_ADDR", "localhost:6379")
		t.Setenv("RELAY_REDIS_DB", "2")
		t.Setenv("RELAY_KAFKA_ENABLED", "true")
		t.Setenv("RELAY_KAFKA_BROKERS", "k1:9092,k2:9092")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 500*time.Millisecond, cfg.Origin.PollingInterval)
		assert.Equal(t, "origin-secret", cfg.Origin.Password)
		assert.Equal(t, []string{"bridge:0x01:a.json", "token:0x02:b.json"}, cfg.Origin.Contracts)
		assert.Equal(t, map[string]string{"X-Api-Key": "abc123"}, cfg.Auxiliary.Headers)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("fails without the chain endpoints", func(t *testing.T) {
		setRequired(t)
		unset(t, "RELAY_AUXILIARY_ENDPOINT")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'Endpoint'")
	})

	t.Run("fails on a malformed validator address", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_ORIGIN_VALIDATOR", "validator")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("requires an address when redis is enabled", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_REDIS_ENABLED", "true")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'Addr'")
	})

	t.Run("requires brokers when kafka is enabled", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_KAFKA_ENABLED", "true")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'Brokers'")
	})

	t.Run("rejects a negative scheduler limit", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_SCHEDULER_LIMIT", "-1")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'SchedulerLimit'")
	})

	t.Run("fails on an unparsable duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RELAY_ORIGIN_TIMEOUT", "soon")

		_, err := Load()

		assert.ErrorContains(t, err, "processing environment")
	})

	t.Run("seeds missing variables from an env file", func(t *testing.T) {
		setRequired(t)
		unset(t, "RELAY_ORIGIN_ENDPOINT")
		unset(t, "RELAY_METRICS_ADDR")
		t.Setenv("RELAY_LOG_LEVEL", "warn")

		path := filepath.Join(t.TempDir(), "relay.env")
		require.NoError(t, os.WriteFile(path, []byte(
			"RELAY_ORIGIN_ENDPOINT=http://from-file:8545\n"+
				"RELAY_METRICS_ADDR=:9100\n"+
				"RELAY_LOG_LEVEL=error\n",
		), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "http://from-file:8545", cfg.Origin.Endpoint)
		assert.Equal(t, ":9100", cfg.MetricsAddr)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("tolerates a missing env file", func(t *testing.T) {
		setRequired(t)

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
	})
}
