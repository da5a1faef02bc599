package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader reads so ambient CI values
// cannot leak into the assertions. t.Setenv registers the restore; the
// unset leaves the key absent for the test body.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_HOST", "HTTP_PORT", "GRPC_HOST", "GRPC_PORT", "API_DEFAULT_PAGE_SIZE",
		"CACHE_ENABLED", "CACHE_DRIVER", "CACHE_DEFAULT_TTL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"MESSAGING_DRIVER", "MESSAGING_ENABLED",
		"KAFKA_BROKERS", "KAFKA_CLIENT_ID", "KAFKA_TOPIC", "KAFKA_COMMIT_INTERVAL",
		"KAFKA_MIN_BYTES", "KAFKA_MAX_BYTES", "KAFKA_CONNECT_TIMEOUT", "KAFKA_CONSUMER_GROUP",
		"WORKER_ENABLED", "WORKER_POLL_INTERVAL", "WORKER_CONCURRENCY",
		"DB_DRIVER", "DB_WRITER_DSN", "DB_READER_DSN",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_MAX_CONN_LIFETIME",
		"OBS_SERVICE_NAME", "OBS_ENVIRONMENT", "OBS_LOG_LEVEL", "OBS_LOG_ENCODING",
		"OBS_ENABLE_TRACING", "OBS_TRACE_EXPORTER", "OBS_OTLP_ENDPOINT", "OBS_OTLP_INSECURE",
		"OBS_ENABLE_METRICS", "OBS_METRICS_EXPORTER", "OBS_PROMETHEUS_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.Equal(t, 10, cfg.API.DefaultPageSize)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
	assert.Equal(t, "kafka", cfg.Messaging.Driver)
	assert.Equal(t, "orders.events", cfg.Messaging.Kafka.Topic)
	assert.Equal(t, "northwind-worker", cfg.Messaging.ConsumerGroup)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, cfg.Database.WriterDSN, cfg.Database.ReaderDSN)
	assert.Equal(t, "northwind-orders", cfg.Observability.ServiceName)
	assert.Equal(t, "/metrics", cfg.Observability.PrometheusPath)
}

func TestNewOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("API_DEFAULT_PAGE_SIZE", "25")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("DB_READER_DSN", "postgres://ro@replica:5432/northwind")
	t.Setenv("OBS_LOG_LEVEL", " DEBUG ")
	t.Setenv("OBS_PROMETHEUS_PATH", "internal/metrics")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.API.DefaultPageSize)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Messaging.Kafka.Brokers)
	assert.Equal(t, "postgres://ro@replica:5432/northwind", cfg.Database.ReaderDSN)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "/internal/metrics", cfg.Observability.PrometheusPath)
}

func TestNewValidation(t *testing.T) {
	t.Run("invalid http port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_PORT", "-1")

		_, err := New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid HTTP port")
	})

	t.Run("unsupported cache driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CACHE_DRIVER", "memcached")

		_, err := New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported cache driver")
	})

	t.Run("non-positive page size falls back to default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_DEFAULT_PAGE_SIZE", "0")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.API.DefaultPageSize)
	})

	t.Run("disabled cache forces noop driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CACHE_ENABLED", "false")
		t.Setenv("CACHE_DRIVER", "redis")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "noop", cfg.Cache.Driver)
	})

	t.Run("disabled messaging forces noop driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MESSAGING_ENABLED", "false")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "noop", cfg.Messaging.Driver)
	})

	t.Run("worker knobs are clamped", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WORKER_CONCURRENCY", "0")
		t.Setenv("WORKER_POLL_INTERVAL", "-1s")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Messaging.Workers.Concurrency)
		assert.Equal(t, time.Second, cfg.Messaging.Workers.PollInterval)
	})
}
