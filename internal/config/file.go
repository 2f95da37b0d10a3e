package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig holds the optional on-disk defaults, read from
// $XDG_CONFIG_HOME/selecta/config.yaml (or ~/.config/selecta/config.yaml).
type FileConfig struct {
	// Height is the default number of result lines.
	Height int `yaml:"height"`
}

// DefaultFileConfig returns the defaults applied when no config file
// exists.
func DefaultFileConfig() FileConfig {
	return FileConfig{Height: DefaultHeight}
}

// LoadFile reads the defaults file. A missing file is not an error; a
// malformed one is.
func LoadFile() (FileConfig, error) {
	return loadFile(filePath())
}

func loadFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Height < 0 {
		return cfg, fmt.Errorf("%s: height must not be negative", path)
	}
	return cfg, nil
}

// filePath resolves the config file location, preferring XDG_CONFIG_HOME.
func filePath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "selecta", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "selecta", "config.yaml")
}
