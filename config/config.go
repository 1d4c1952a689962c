package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultDatabaseName   = "petition_db"
	DefaultPort           = "5000"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultConnectTimeout = 5 * time.Second
)

// Config holds the process configuration. It is read once at startup and
// never mutated afterwards.
type Config struct {
	MongoURI       string
	DatabaseName   string
	AdminKey       string
	Port           string
	LogLevel       string
	LogFormat      string
	LogFile        string
	ConnectTimeout time.Duration
}

// AdminKeyConfigured reports whether the export endpoints can ever authorize.
func (c *Config) AdminKeyConfigured() bool {
	return c.AdminKey != ""
}

// ListenAddr returns the address handed to the HTTP server
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		MongoURI:       valueOrDefault(getenv("MONGO_URI"), DefaultMongoURI),
		DatabaseName:   valueOrDefault(getenv("MONGO_DB"), DefaultDatabaseName),
		AdminKey:       getenv("ADMIN_KEY"),
		Port:           valueOrDefault(getenv("PORT"), DefaultPort),
		LogLevel:       valueOrDefault(getenv("LOG_LEVEL"), DefaultLogLevel),
		LogFormat:      strings.ToLower(valueOrDefault(getenv("LOG_FORMAT"), DefaultLogFormat)),
		LogFile:        strings.TrimSpace(getenv("LOG_FILE")),
		ConnectTimeout: DefaultConnectTimeout,
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if raw := strings.TrimSpace(getenv("DB_CONNECT_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.ConnectTimeout = timeout
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: expected text or json", cfg.LogFormat)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
