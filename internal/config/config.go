package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the intake service.
type Config struct {
	// Server configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Mail configuration. An empty ResendAPIKey disables notification
	// dispatch entirely.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailTo       string `env:"MAIL_TO" envDefault:"tobias@truenorthmaterials.com"`
	MailCc       string `env:"MAIL_CC" envDefault:"peti@truenorthmaterials.com"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"TrueNorth Platform <tobias@truenorthmaterials.com>"`
}

// MailConfigured reports whether an email credential is present.
func (c *Config) MailConfigured() bool {
	return c.ResendAPIKey != ""
}

// Load loads the configuration from environment variables and .env files.
func Load() (*Config, error) {
	// Environment-specific file first, then the generic fallback. godotenv
	// never overwrites variables that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.LogFile == "" && cfg.Environment == "production" {
		cfg.LogFile = "/app/logs/api.log"
	}

	return cfg, nil
}
