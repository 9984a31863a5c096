package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port    string        `yaml:"port" validate:"required,numeric"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Store   StoreConfig   `yaml:"store"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type SessionConfig struct {
	Secret string        `yaml:"secret" validate:"required,min=8"`
	TTL    time.Duration `yaml:"ttl" validate:"gt=0"`
}

// StoreConfig selects the key-value backend carts are written to. DSN is a
// go-sql-driver DSN for mysql, a postgres URL for postgres, a file path for
// sqlite and an address or redis:// URL for redis.
type StoreConfig struct {
	Driver string `yaml:"driver" validate:"oneof=memory redis mysql postgres sqlite"`
	DSN    string `yaml:"dsn" validate:"required_unless=Driver memory"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Session: SessionConfig{
			Secret: "change-me-in-production",
			TTL:    30 * 24 * time.Hour,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			DSN:    "storefront.db",
		},
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse config")
		}
	}

	cfg.Port = getenv("APP_PORT", cfg.Port)
	cfg.Log.Level = getenv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenv("LOG_FORMAT", cfg.Log.Format)
	cfg.Session.Secret = getenv("SESSION_SECRET", cfg.Session.Secret)
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := parseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "SESSION_TTL")
		}
		cfg.Session.TTL = ttl
	}
	cfg.Store.Driver = getenv("STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.DSN = getenv("STORE_DSN", cfg.Store.DSN)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" && cfg.Store.Driver == "redis" {
		cfg.Store.DSN = addr
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// parseDuration accepts Go durations ("720h") or a bare number of seconds.
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
