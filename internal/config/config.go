package config

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	Output    OutputConfig
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"production"` // development, staging, production, test
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`     // debug, info, warn, error
}

// Validate validates the app configuration.
func (c *AppConfig) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Environment)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// GeneratorConfig holds the defaults used when generating positions.
type GeneratorConfig struct {
	Factor             float64 `envconfig:"POSITIONS_FACTOR" default:"0.5"`
	Random             bool    `envconfig:"POSITIONS_RANDOM"`
	Seed               uint64  `envconfig:"POSITIONS_SEED"` // 0 picks a random seed
	BlocklistFile      string  `envconfig:"POSITIONS_BLOCKLIST_FILE"`
	BlockedPattern     string  `envconfig:"POSITIONS_BLOCKED_PATTERN"`
	BlockedGlob        string  `envconfig:"POSITIONS_BLOCKED_GLOB"`
	NoDefaultBlocklist bool    `envconfig:"POSITIONS_NO_DEFAULT_BLOCKLIST"`
}

// Validate validates the generator configuration.
func (c *GeneratorConfig) Validate() error {
	if c.Factor < 0 || c.Factor > 1 {
		return fmt.Errorf("factor must be between 0 and 1, got %f", c.Factor)
	}
	if c.BlockedPattern != "" {
		if _, err := regexp.Compile(c.BlockedPattern); err != nil {
			return fmt.Errorf("invalid blocked pattern: %w", err)
		}
	}
	if c.BlockedGlob != "" && !doublestar.ValidatePattern(c.BlockedGlob) {
		return fmt.Errorf("invalid blocked glob: %s", c.BlockedGlob)
	}
	return nil
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format    string `envconfig:"POSITIONS_FORMAT" default:"text"` // text, json, yaml
	IDVersion int    `envconfig:"POSITIONS_ID_VERSION" default:"7"`
	IDRetries int    `envconfig:"POSITIONS_ID_RETRIES" default:"1"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be one of: text, json, yaml)", c.Format)
	}
	if c.IDVersion != 4 && c.IDVersion != 7 {
		return fmt.Errorf("invalid id version: %d (must be 4 or 7)", c.IDVersion)
	}
	if c.IDRetries < 0 {
		return fmt.Errorf("id retries must not be negative, got %d", c.IDRetries)
	}
	return nil
}

// Load loads configuration from environment variables only.
// (.env loading happens in the app package.)
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("failed to load App config: %w", err)
	}
	if err := cfg.App.Validate(); err != nil {
		return nil, fmt.Errorf("invalid App config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Generator); err != nil {
		return nil, fmt.Errorf("failed to load Generator config: %w", err)
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Generator config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Output); err != nil {
		return nil, fmt.Errorf("failed to load Output config: %w", err)
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Output config: %w", err)
	}

	return cfg, nil
}
