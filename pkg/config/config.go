// Package config loads the optional kanjidex.yaml project file.
// Every field has a default; command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/morg/kanjidex/pkg/kanjipedia"
)

// Config holds the runtime settings shared by the CLI commands.
type Config struct {
	Database            string `yaml:"database"`
	OutputDir           string `yaml:"output_dir"`
	BaseURL             string `yaml:"base_url"`
	UserAgent           string `yaml:"user_agent"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Database:            "kanjidex.db",
		OutputDir:           ".",
		BaseURL:             kanjipedia.BaseURL,
		UserAgent:           kanjipedia.DefaultUserAgent,
		FetchTimeoutSeconds: 30,
	}
}

// Load reads a config file, filling unset fields from defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Database) == "" {
		return fmt.Errorf("database path is required")
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetch_timeout_seconds must be positive")
	}
	return nil
}

// FetchTimeout returns the fetch timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
