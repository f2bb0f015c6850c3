package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backend names. Selection happens once at startup and is
// immutable for the process lifetime.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig holds the HTTP-facing configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	// Path is the database file for the sqlite and bolt backends.
	Path string `yaml:"path"`
	// DSN is used by the postgres backend only.
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendSQLite
	}
	switch cfg.Storage.Backend {
	case BackendSQLite, BackendBolt:
		if cfg.Storage.Path == "" {
			cfg.Storage.Path = "./repairshop.db"
		}
	case BackendPostgres:
		if cfg.Storage.DSN == "" {
			return nil, fmt.Errorf("storage.dsn is required for the postgres backend")
		}
		if cfg.Storage.MaxOpenConns <= 0 {
			cfg.Storage.MaxOpenConns = 5
		}
		if cfg.Storage.MaxIdleConns <= 0 {
			cfg.Storage.MaxIdleConns = 2
		}
		if cfg.Storage.ConnMaxLifetimeMinutes <= 0 {
			cfg.Storage.ConnMaxLifetimeMinutes = 30
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}
