package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order.
var ConfigPaths = []string{
	"./.holo.yaml",               // Project-specific config (highest priority)
	"~/.config/holo/config.yaml", // User config
	"/etc/holo/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging.
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (HOLO_*)
// 3. ./.holo.yaml
// 4. ~/.config/holo/config.yaml
// 5. /etc/holo/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order so later
		// (higher priority) files override earlier ones.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads a YAML file and merges it into config.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies HOLO_* environment variables to the config.
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Demo config
		"HOLO_DEMO_DIMENSIONALITY": func(v string) error { return parseInt(v, &config.Demo.Dimensionality) },
		"HOLO_DEMO_SEED":           func(v string) error { return parseInt64(v, &config.Demo.Seed) },
		"HOLO_DEMO_TIE_TOLERANCE":  func(v string) error { return parseFloat(v, &config.Demo.TieTolerance) },
		"HOLO_DEMO_NORMALIZE":      func(v string) error { return parseBool(v, &config.Demo.Normalize) },
		"HOLO_DEMO_SUPERPOSE":      func(v string) error { return parseBool(v, &config.Demo.Superpose) },

		// Output config
		"HOLO_OUTPUT_FORMAT":      func(v string) error { config.Output.DefaultFormat = v; return nil },
		"HOLO_OUTPUT_COLOR_MODE":  func(v string) error { config.Output.ColorMode = v; return nil },
		"HOLO_OUTPUT_VERBOSE":     func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"HOLO_OUTPUT_SHOW_TABLES": func(v string) error { return parseBool(v, &config.Output.ShowTables) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}
	return nil
}

// mergeConfigs merges src into dst, overriding only set (non-zero) values.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	if src.Demo.Dimensionality != 0 {
		dst.Demo.Dimensionality = src.Demo.Dimensionality
	}
	if src.Demo.Seed != 0 {
		dst.Demo.Seed = src.Demo.Seed
	}
	if src.Demo.TieTolerance != 0 {
		dst.Demo.TieTolerance = src.Demo.TieTolerance
	}
	if src.Demo.Normalize {
		dst.Demo.Normalize = true
	}
	if src.Demo.Superpose {
		dst.Demo.Superpose = true
	}
	if len(src.Demo.Bindings) > 0 {
		dst.Demo.Bindings = src.Demo.Bindings
	}

	if src.Output.DefaultFormat != "" {
		dst.Output.DefaultFormat = src.Output.DefaultFormat
	}
	if src.Output.ColorMode != "" {
		dst.Output.ColorMode = src.Output.ColorMode
	}
	if src.Output.Verbose {
		dst.Output.Verbose = true
	}
	if src.Output.ShowTables {
		dst.Output.ShowTables = true
	}
}

// validateConfigPath rejects paths that escape the allowed locations.
func validateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		return fmt.Errorf("path traversal not allowed: %s", path)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parseInt(value string, target *int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseInt64(value string, target *int64) error {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseFloat(value string, target *float64) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseBool(value string, target *bool) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}
