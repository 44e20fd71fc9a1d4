package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// A custom path bypasses the standard search paths, keeping the test
	// hermetic against any real ~/.config/holo/config.yaml.
	path := writeConfigFile(t, "version: \"1.0\"\n")

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Dimensionality != 512 {
		t.Errorf("dimensionality = %d, want 512", cfg.Demo.Dimensionality)
	}
	if cfg.Demo.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Demo.Seed)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("format = %q, want text", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
demo:
  dimensionality: 1024
  seed: 7
  bindings:
    - role: agent
      filler: alice
output:
  default_format: json
`)

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Dimensionality != 1024 {
		t.Errorf("dimensionality = %d, want 1024", cfg.Demo.Dimensionality)
	}
	if cfg.Demo.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Demo.Seed)
	}
	if len(cfg.Demo.Bindings) != 1 || cfg.Demo.Bindings[0].Role != "agent" {
		t.Errorf("bindings = %v", cfg.Demo.Bindings)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("format = %q, want json", cfg.Output.DefaultFormat)
	}
	// Unset values keep their defaults.
	if cfg.Demo.TieTolerance != 1e-9 {
		t.Errorf("tie tolerance = %g, want 1e-9", cfg.Demo.TieTolerance)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "demo:\n  dimensionality: 1024\n")
	t.Setenv("HOLO_DEMO_DIMENSIONALITY", "256")
	t.Setenv("HOLO_DEMO_SUPERPOSE", "true")
	t.Setenv("HOLO_OUTPUT_FORMAT", "markdown")

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Dimensionality != 256 {
		t.Errorf("dimensionality = %d, want env override 256", cfg.Demo.Dimensionality)
	}
	if !cfg.Demo.Superpose {
		t.Error("expected superpose enabled via env")
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("format = %q, want markdown", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigInvalidEnvValue(t *testing.T) {
	path := writeConfigFile(t, "version: \"1.0\"\n")
	t.Setenv("HOLO_DEMO_SEED", "not-a-number")

	if _, err := NewLoader().LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid env value")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "demo:\n  dimensionality: -8\n")

	_, err := NewLoader().LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid dimensionality") {
		t.Errorf("error = %v, want dimensionality complaint", err)
	}
}

func TestLoadConfigMissingCustomPath(t *testing.T) {
	if _, err := NewLoader().LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing custom config path")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "config.yaml", wantErr: false},
		{path: "./configs/holo.yaml", wantErr: false},
		{path: "../escape.yaml", wantErr: true},
		{path: "configs/../../escape.yaml", wantErr: true},
		{path: "", wantErr: true},
	}
	for _, tt := range tests {
		err := validateConfigPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateConfigPath(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestMergeConfigs(t *testing.T) {
	dst := DefaultConfig()
	src := &Config{}
	src.Demo.Seed = 99
	src.Output.ColorMode = "never"

	mergeConfigs(dst, src)

	if dst.Demo.Seed != 99 {
		t.Errorf("seed = %d, want 99", dst.Demo.Seed)
	}
	if dst.Output.ColorMode != "never" {
		t.Errorf("color mode = %q, want never", dst.Output.ColorMode)
	}
	// Zero values in src leave dst untouched.
	if dst.Demo.Dimensionality != 512 {
		t.Errorf("dimensionality = %d, want 512", dst.Demo.Dimensionality)
	}
}
