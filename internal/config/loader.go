package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by LoadTetris.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadTetris loads the tetris configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadTetris(customPath string) (TetrisConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readTetris(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultTetrisConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readTetris reads a YAML file over the default configuration.
func readTetris(path string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
