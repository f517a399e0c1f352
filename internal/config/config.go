// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings. Every field maps to one environment variable.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`
	SiteDir     string `env:"SITE_DIR" envDefault:"./dist/public"`

	// Initial notification settings. The stored settings record wins once written.
	ResendAPIKey      string `env:"RESEND_API_KEY"`
	NotificationEmail string `env:"NOTIFICATION_EMAIL"`

	NotifyFrom    string        `env:"NOTIFY_FROM" envDefault:"onboarding@resend.dev"`
	NotifyPolicy  string        `env:"NOTIFY_POLICY" envDefault:"lenient"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
	ResendBaseURL *url.URL      `env:"RESEND_BASE_URL"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the process take precedence over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be positive, got %s", c.NotifyTimeout)
	}
	if c.NotifyFrom == "" {
		return fmt.Errorf("NOTIFY_FROM must not be empty")
	}
	return nil
}
