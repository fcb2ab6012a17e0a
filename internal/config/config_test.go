package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "80", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Zero(t, cfg.Server.RateLimit)

	assert.Equal(t, "mongodb", cfg.Database.Host)
	assert.Equal(t, "max", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "list-games", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.ConnectTimeout)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.Observability.HealthCheckEnabled("database"))
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfigMongoEnv(t *testing.T) {
	t.Setenv("MONGO_USER", "alice")
	t.Setenv("MONGO_PASSWORD", "p@ss:word")
	t.Setenv("MONGO_HOST", "db.internal")
	t.Setenv("MONGO_DB", "games")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Database.User)
	assert.Equal(t, "p@ss:word", cfg.Database.Password)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "games", cfg.Database.Name)
}

func TestLoadConfigEmptyEnvKeepsDefaults(t *testing.T) {
	t.Setenv("MONGO_HOST", "")
	t.Setenv("MONGO_USER", "")
	t.Setenv("GAMES_SERVER__PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb", cfg.Database.Host)
	assert.Equal(t, "max", cfg.Database.User)
	assert.Equal(t, "80", cfg.Server.Port)
}

func TestLoadConfigServiceEnv(t *testing.T) {
	t.Setenv("GAMES_PRIMARY__ENV", "production")
	t.Setenv("GAMES_SERVER__PORT", "8080")
	t.Setenv("GAMES_SERVER__READ_TIMEOUT", "5")
	t.Setenv("GAMES_SERVER__RATE_LIMIT", "2.5")
	t.Setenv("GAMES_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("GAMES_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("GAMES_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfigRejectsInvalidLevel(t *testing.T) {
	t.Setenv("GAMES_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, "database.name", mongoKey("MONGO_DB"))
	assert.Equal(t, "database.host", mongoKey("MONGO_HOST"))
	assert.Equal(t, "server.read_timeout", serviceKey("GAMES_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", serviceKey("GAMES_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))

	key, value := skipEmpty(mongoKey)("MONGO_HOST", "")
	assert.Empty(t, key)
	assert.Nil(t, value)

	key, value = skipEmpty(mongoKey)("MONGO_HOST", "db")
	assert.Equal(t, "database.host", key)
	assert.Equal(t, "db", value)
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.HealthChecks.Timeout = 10 * time.Millisecond
	assert.Error(t, cfg.Validate())

	cfg.HealthChecks.Enabled = false
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
