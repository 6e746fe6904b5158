package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	commoncfg "github.com/rutvik18Verticals/ally-xs-api-sub007/common/config"

	"gopkg.in/yaml.v3"
)

// Feature flag sources.
const (
	FlagSourceEnv   = "env"
	FlagSourceRedis = "redis"
)

// Config xspoc-data service configuration.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Database commoncfg.DatabaseConfig `yaml:"database"`
	Redis    commoncfg.RedisConfig    `yaml:"redis"`
	Log      struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	FeatureFlags FeatureFlagConfig `yaml:"feature_flags"`
	Influx       InfluxConfig      `yaml:"influx"`
}

// FeatureFlagConfig where runtime flags come from.
type FeatureFlagConfig struct {
	Source       string `yaml:"source"` // env | redis
	Prefix       string `yaml:"prefix"` // Redis key prefix
	EnableInflux bool   `yaml:"enable_influx"`
}

// InfluxConfig time-series store used when EnableInflux is set.
type InfluxConfig struct {
	URL            string `yaml:"url"`
	Database       string `yaml:"database"`
	Measurement    string `yaml:"measurement"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RetryCount     int    `yaml:"retry_count"`
}

// Timeout request timeout as a duration.
func (c InfluxConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Enabled reports whether a time-series store is configured.
func (c InfluxConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads environment variables, then overlays CONFIG_FILE when set.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "xspoc")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 20)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.FeatureFlags.Source = getEnv("FEATURE_FLAG_SOURCE", FlagSourceEnv)
	cfg.FeatureFlags.Prefix = getEnv("FEATURE_FLAG_PREFIX", "xspoc:feature:")
	cfg.FeatureFlags.EnableInflux = getEnvBool("ENABLE_INFLUX", false)

	cfg.Influx.URL = getEnv("INFLUX_URL", "")
	cfg.Influx.Database = getEnv("INFLUX_DATABASE", "xspoc")
	cfg.Influx.Measurement = getEnv("INFLUX_MEASUREMENT", "current_raw_scan_data")
	cfg.Influx.Token = getEnv("INFLUX_TOKEN", "")
	cfg.Influx.TimeoutSeconds = getEnvInt("INFLUX_TIMEOUT_SECONDS", 10)
	cfg.Influx.RetryCount = getEnvInt("INFLUX_RETRY_COUNT", 0)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no safe fallback.
func (c *Config) Validate() error {
	switch c.FeatureFlags.Source {
	case FlagSourceEnv, FlagSourceRedis:
	default:
		return fmt.Errorf("invalid feature flag source %q (want %s or %s)", c.FeatureFlags.Source, FlagSourceEnv, FlagSourceRedis)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http addr is required")
	}
	if c.Influx.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid influx timeout %d", c.Influx.TimeoutSeconds)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}
