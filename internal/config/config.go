package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full gateway configuration, loaded from config.toml with
// environment overrides for values that should not live in the file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Backend BackendConfig `toml:"backend"`
	Cache   CacheConfig   `toml:"cache"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Admin   AdminConfig   `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// BackendConfig points at the salon backend serving the /api contract.
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CacheConfig controls the catalog response cache. TTLSeconds of 0 means
// entries never go stale and live until explicitly invalidated.
type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig carries the shared token that gates admin routes. The token
// itself comes from the environment, not the file.
type AdminConfig struct {
	Token string `toml:"-"`
}

// Load reads the config file and applies environment overrides
// (BACKEND_URL, ADMIN_API_TOKEN).
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Backend: BackendConfig{Timeout: 10},
		Cache:   CacheConfig{TTLSeconds: 300},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "salon-gateway"},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if url := os.Getenv("BACKEND_URL"); url != "" {
		cfg.Backend.URL = url
	}
	cfg.Admin.Token = os.Getenv("ADMIN_API_TOKEN")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("config: backend.url is required (or set BACKEND_URL)")
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("config: cache.ttl_seconds must not be negative")
	}
	return nil
}
