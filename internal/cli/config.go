package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// MaxCount bounds the number of identifiers a single `new` run generates.
const MaxCount = 1_000_000

// Config holds defaults for the command line tool. Flags override it.
type Config struct {
	Output    string `json:"output" yaml:"output" env:"UUIDB64_OUTPUT" envDefault:"text"`
	Count     int    `json:"count" yaml:"count" env:"UUIDB64_COUNT" envDefault:"1"`
	TraceFile string `json:"traceFile,omitempty" yaml:"traceFile,omitempty" env:"UUIDB64_TRACE_FILE"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
		Count:  1,
	}
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be one of %v, %v, %v: %q", OutputText, OutputJSON, OutputYAML, c.Output)
	}
	if err := validateCount(c.Count); err != nil {
		return err
	}
	return nil
}

func validateCount(count int) error {
	if count <= 0 || count > MaxCount {
		return fmt.Errorf("count must be between 1 and %d: %d", MaxCount, count)
	}
	return nil
}
