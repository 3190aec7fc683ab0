// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// DefaultOutputFile is where the generated document goes when
// IMPRESSUM_OUTPUT_FILE is not set.
const DefaultOutputFile = "/run/impressum/impressum.html"

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Contact sources. Each variable names a file, not the value itself,
	// so the secrets can live in mounted credential files.
	EmailFile string `env:"IMPRESSUM_EMAIL_FILE,required,notEmpty"`
	PhoneFile string `env:"IMPRESSUM_PHONE_FILE,required,notEmpty"`
	NameFile  string `env:"IMPRESSUM_NAME_FILE,required,notEmpty"`

	// HTML template with placeholder tokens
	TemplateFile string `env:"IMPRESSUM_TEMPLATE_FILE,required,notEmpty"`

	// Destination of the generated document
	OutputFile string `env:"IMPRESSUM_OUTPUT_FILE" envDefault:"/run/impressum/impressum.html"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// IsJSONLogging returns true if logs should be emitted as JSON.
func (c *Config) IsJSONLogging() bool {
	return strings.EqualFold(c.LogFormat, "json")
}

// Load parses environment variables and returns a Config.
// Returns an error naming the variable if a required one is missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	return cfg, nil
}
