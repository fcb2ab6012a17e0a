// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Provide defaults matching the reference deployment (mongodb host, port 80).
//   - Map MONGO_* and GAMES_* env vars into a structured Go config.
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Keys are loaded in three layers, later layers winning:

	1. defaults (confmap)
	2. MONGO_USER / MONGO_PASSWORD / MONGO_HOST / MONGO_DB -> database.*
	3. GAMES_<SECTION>__<FIELD> -> <section>.<field>
	   e.g. GAMES_SERVER__READ_TIMEOUT -> server.read_timeout
	        GAMES_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	Variables that are set but empty are skipped, so the default stays.
*/

const (
	// EnvPrefix is the prefix for all service-level environment variables.
	EnvPrefix = "GAMES_"

	// MongoEnvPrefix is the prefix of the document store credentials.
	MongoEnvPrefix = "MONGO_"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds. RateLimit is requests per second per client IP;
// zero disables rate limiting.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          float64  `koanf:"rate_limit" validate:"gte=0"`
	RateBurst          int      `koanf:"rate_burst" validate:"gte=0"`
}

// DatabaseConfig contains the document store connection parameters.
//
// The port (27017) and auth source ("admin") are fixed and live in the
// database package, not here.
type DatabaseConfig struct {
	Host           string `koanf:"host" validate:"required"`
	User           string `koanf:"user" validate:"required"`
	Password       string `koanf:"password" validate:"required"`
	Name           string `koanf:"name" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required,min=1"`
}

// defaults mirrors the values the service has always shipped with.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 "80",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.shutdown_timeout":     30,
		"server.cors_allowed_origins": []string{"*"},
		"server.rate_limit":           0,
		"server.rate_burst":           0,

		"database.host":            "mongodb",
		"database.user":            "max",
		"database.password":        "secret",
		"database.name":            "list-games",
		"database.connect_timeout": 10,

		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          100 * time.Millisecond,
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.timeout":                 5 * time.Second,
		"observability.health_checks.checks":                  []string{"database"},
	}
}

// mongoKey maps MONGO_* variables onto database.* keys.
//
//	MONGO_USER -> database.user
//	MONGO_DB   -> database.name
func mongoKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, MongoEnvPrefix))
	if key == "db" {
		key = "name"
	}
	return "database." + key
}

// serviceKey maps GAMES_* variables onto nested keys, using a double
// underscore as the nesting delimiter.
func serviceKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// skipEmpty wraps a key mapper so that variables set to "" are ignored and
// the default for that key stays in effect.
func skipEmpty(mapKey func(string) string) func(string, string) (string, interface{}) {
	return func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return mapKey(key), value
	}
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it, applies observability defaults,
// and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(MongoEnvPrefix, ".", skipEmpty(mongoKey)), nil); err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", MongoEnvPrefix, err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", skipEmpty(serviceKey)), nil); err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", EnvPrefix, err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
