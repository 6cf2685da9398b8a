// ABOUTME: Configuration management for the icon proxy with environment variable support
// ABOUTME: Defines configuration structures for server, upstream API and logging settings

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains icon API configuration
	Upstream UpstreamConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" envDefault:"8000"`

	// BasePath is where the host mounts the proxy routes
	BasePath string `env:"BASE_PATH" envDefault:"/iconify-proxy"`

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// UpstreamConfig holds icon API configuration
type UpstreamConfig struct {
	// BaseURL is the root of the Iconify API
	BaseURL string `env:"ICONIFY_API_URL" envDefault:"https://api.iconify.design"`

	// Timeout bounds each upstream call; zero disables the client timeout
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	// UserAgent is sent with every upstream call
	UserAgent string `env:"UPSTREAM_USER_AGENT" envDefault:"IconifyProxy/1.0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is "text" or "json"
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// File enables rotating file output when set
	File string `env:"LOG_FILE"`

	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `env:"LOG_MAX_SIZE_MB" envDefault:"500"`

	// MaxBackups is the number of rotated files kept
	MaxBackups int `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	return Load(nil)
}

// Load reads configuration from the given environment; nil means the process environment
func Load(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Server.BasePath = strings.TrimRight(cfg.Server.BasePath, "/")
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		return errors.New("base path must start with '/'")
	}

	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("upstream base URL must be an absolute URL, got %q", c.Upstream.BaseURL)
	}

	if c.Upstream.Timeout < 0 {
		return errors.New("upstream timeout cannot be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
