// Package config loads AIMole's user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

// Config is the user-tunable behavior surface. Values are passed
// explicitly into constructors; there is no ambient mutable state.
type Config struct {
	// DefaultTier applies to directories no signature bucket covers.
	DefaultTier safety.Tier `yaml:"default_tier"`

	// ExcludePatterns is accepted for forward compatibility; the core
	// does not act on it yet.
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// Default returns the baseline configuration: unknown directories are
// treated with caution.
func Default() Config {
	return Config{DefaultTier: safety.TierCaution}
}

// Dir returns the directory holding the config and override files,
// honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aimole"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "aimole"), nil
}

// Load reads the config file at path, returning Default() when the file
// does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
