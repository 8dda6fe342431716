// Package config handles the netexposure configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds scan defaults read from the configuration file. CLI flags
// always take precedence; file values only fill in flags the user left at
// their defaults.
type Config struct {
	// Timeout is the per-probe socket timeout in seconds.
	Timeout float64 `toml:"timeout"`

	// Concurrency bounds simultaneous connection attempts.
	Concurrency int `toml:"concurrency"`

	// Ports is a port specification string, e.g. "22,80,443,1000-1010".
	// Empty means the built-in curated list.
	Ports string `toml:"ports"`

	// Verbose enables detailed scanner logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "netexposure.toml"
	}
	return filepath.Join(home, ".netexposure", "config.toml")
}

// Load reads configuration from a file. A missing file yields a zero
// config, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes configuration to a file, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := "# netexposure configuration\n# Values here act as defaults; CLI flags override them.\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Exists checks if a config file exists.
func Exists(path string) bool {
	if path == "" {
		path = DefaultConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}

// CreateDefault writes a config file carrying the built-in scan defaults.
func CreateDefault(path string) error {
	return Save(&Config{Timeout: 1.0, Concurrency: 200}, path)
}
