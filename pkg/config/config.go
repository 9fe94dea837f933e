// Package config loads the server configuration from YAML with sensible
// defaults, so `demoapi serve` works with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`

	// Log configures level and format.
	Log LogConfig `yaml:"log"`

	// AllowedOrigins is the CORS allow-list. "*" allows any origin.
	AllowedOrigins []string `yaml:"allowedOrigins"`

	// Seed preloads the demo data set at startup.
	Seed bool `yaml:"seed"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given,
// matching the reference backend (port 8000, CORS open to the local
// frontend, seeded demo data).
func Default() Config {
	return Config{
		Port: 8000,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		AllowedOrigins: []string{"http://localhost:3000"},
		Seed:           true,
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be 1-65535", c.Port)
	}
	return nil
}
