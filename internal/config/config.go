package config

import (
	"fmt"
)

// Config holds the complete application configuration. The demonstration
// parameters (dimensionality, seed, bindings) are deliberately configuration
// rather than constants: they shape the fidelity of recovery, not the
// semantics of the algorithm.
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Demo    DemoConfig   `yaml:"demo" json:"demo"`
	Output  OutputConfig `yaml:"output" json:"output"`
}

// DemoConfig configures the HRR demonstration run.
type DemoConfig struct {
	Dimensionality int       `yaml:"dimensionality" json:"dimensionality"` // vector length n
	Seed           int64     `yaml:"seed" json:"seed"`                     // PRNG seed for reproducible vectors
	TieTolerance   float64   `yaml:"tie_tolerance" json:"tie_tolerance"`   // similarity gap reported as a tie
	Normalize      bool      `yaml:"normalize" json:"normalize"`           // store unit-length vectors
	Superpose      bool      `yaml:"superpose" json:"superpose"`           // also unbind from a superposed trace
	Bindings       []Binding `yaml:"bindings" json:"bindings"`             // role/filler pairs to bind
}

// Binding names one role/filler pair bound into the demonstration.
type Binding struct {
	Role   string `yaml:"role" json:"role"`
	Filler string `yaml:"filler" json:"filler"`
}

// OutputConfig configures output formatting and display.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	ShowTables    bool   `yaml:"show_tables" json:"show_tables"`       // print full similarity tables
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Demo: DemoConfig{
			Dimensionality: 512,
			Seed:           42,
			TieTolerance:   1e-9,
			Normalize:      false,
			Superpose:      false,
			Bindings: []Binding{
				{Role: "role", Filler: "filler"},
			},
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			ShowTables:    true,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.validateDemoConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

func (c *Config) validateDemoConfig() error {
	if c.Demo.Dimensionality <= 0 {
		return fmt.Errorf("invalid dimensionality: %d (must be positive)", c.Demo.Dimensionality)
	}
	if c.Demo.TieTolerance < 0 {
		return fmt.Errorf("invalid tie tolerance: %g (must be non-negative)", c.Demo.TieTolerance)
	}
	if len(c.Demo.Bindings) == 0 {
		return fmt.Errorf("no bindings configured (need at least one role/filler pair)")
	}
	seen := make(map[string]bool)
	for i, b := range c.Demo.Bindings {
		if b.Role == "" || b.Filler == "" {
			return fmt.Errorf("binding %d: role and filler must be non-empty", i)
		}
		if b.Role == b.Filler {
			return fmt.Errorf("binding %d: role and filler must differ (%q)", i, b.Role)
		}
		if seen[b.Role] {
			return fmt.Errorf("binding %d: duplicate role %q", i, b.Role)
		}
		seen[b.Role] = true
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text":     true,
			"json":     true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// SampleConfig returns a full sample configuration file with comments.
func SampleConfig() string {
	return `# holo configuration file
version: "1.0"

# Demonstration parameters. These control fidelity, not semantics: recovery
# quality grows with dimensionality and shrinks with the number of superposed
# bindings.
demo:
  # Vector length n. Power-of-two sizes take the FFT fast path.
  dimensionality: 512

  # Seed for the vector generator. Identical seeds reproduce identical runs.
  seed: 42

  # Two top matches closer than this similarity gap are reported as a tie.
  tie_tolerance: 1.0e-9

  # Store unit-length copies of registered vectors.
  normalize: false

  # Also superpose all bound pairs into a single trace and unbind each role
  # from it, illustrating noise growth with superposition.
  superpose: false

  # Role/filler pairs bound during the demonstration.
  bindings:
    - role: role
      filler: filler

# Output settings
output:
  # Default output format: text, json, markdown
  default_format: text

  # Color mode: auto, always, never
  color_mode: auto

  # Default verbosity
  verbose: false

  # Print the full ranked similarity table for every recovery
  show_tables: true
`
}

// MinimalSampleConfig returns a compact sample configuration.
func MinimalSampleConfig() string {
	return `version: "1.0"
demo:
  dimensionality: 512
  seed: 42
  bindings:
    - role: role
      filler: filler
output:
  default_format: text
`
}
