// Package config loads application configuration from BLOG_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "BLOG"

type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Site    SiteConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:""`
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	// GinMode is passed to gin.SetMode: debug, release or test
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

// ContentConfig says where posts and their images live.
type ContentConfig struct {
	Dir      string `envconfig:"CONTENT_DIR" default:"content/posts"`
	Pattern  string `envconfig:"CONTENT_PATTERN" default:"*.md"`
	ImageDir string `envconfig:"IMAGE_DIR" default:"content/images"`
	// Cache loads posts once at startup instead of on every request
	Cache bool `envconfig:"CONTENT_CACHE" default:"false"`
}

type SiteConfig struct {
	Name        string `envconfig:"SITE_NAME" default:"BlogRecomenda"`
	LatestCount int    `envconfig:"LATEST_COUNT" default:"6"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	// Format is json or console
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from the environment.
// Sections are processed separately so variables stay flat (BLOG_PORT, not BLOG_SERVER_PORT).
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process(envPrefix, &cfg.Content); err != nil {
		return nil, fmt.Errorf("failed to load content config: %w", err)
	}
	if err := envconfig.Process(envPrefix, &cfg.Site); err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}
	if err := envconfig.Process(envPrefix, &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if cfg.Site.LatestCount < 0 {
		return nil, fmt.Errorf("BLOG_LATEST_COUNT must not be negative, got %d", cfg.Site.LatestCount)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
