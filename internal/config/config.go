// Package config handles YAML and TOML configuration parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"benchsuite/internal/report"
	"benchsuite/internal/sampler"
)

// Config is the root configuration structure.
type Config struct {
	Suite      SuiteConfig        `yaml:"suite" toml:"suite"`
	Sampler    SamplerConfig      `yaml:"sampler,omitempty" toml:"sampler"`
	Thresholds *report.Thresholds `yaml:"thresholds,omitempty" toml:"thresholds"`
	Output     OutputConfig       `yaml:"output,omitempty" toml:"output"`
}

// SuiteConfig names the suite and the catalog benchmarks it runs, in order.
type SuiteConfig struct {
	Name       string   `yaml:"name" toml:"name"`
	Benchmarks []string `yaml:"benchmarks" toml:"benchmarks"`
}

// SamplerConfig overrides sampler defaults. Zero values keep the default.
type SamplerConfig struct {
	MinSamples int           `yaml:"minSamples" toml:"minSamples"`
	MaxSamples int           `yaml:"maxSamples" toml:"maxSamples"`
	MinTime    time.Duration `yaml:"minTime" toml:"minTime"`
	MaxTime    time.Duration `yaml:"maxTime" toml:"maxTime"`
	TargetRME  float64       `yaml:"targetRme" toml:"targetRme"`
	Warmup     *int          `yaml:"warmup,omitempty" toml:"warmup"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	Format       string `yaml:"format" toml:"format"` // text or json
	PromTextfile string `yaml:"promTextfile" toml:"promTextfile"`
}

// Options merges the overrides onto sampler.DefaultOptions.
func (s SamplerConfig) Options() sampler.Options {
	opts := sampler.DefaultOptions()
	if s.MinSamples > 0 {
		opts.MinSamples = s.MinSamples
	}
	if s.MaxSamples > 0 {
		opts.MaxSamples = s.MaxSamples
	}
	if s.MinTime > 0 {
		opts.MinTime = s.MinTime
	}
	if s.MaxTime > 0 {
		opts.MaxTime = s.MaxTime
	}
	if s.TargetRME > 0 {
		opts.TargetRME = s.TargetRME
	}
	if s.Warmup != nil {
		opts.Warmup = *s.Warmup
	}
	return opts
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Suite:  SuiteConfig{Name: "default"},
		Output: OutputConfig{Format: "text"},
	}
}

// Validate checks the configuration for values that cannot be run.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("output.format must be 'text' or 'json', got %q", c.Output.Format)
	}
	if err := c.Sampler.Options().Validate(); err != nil {
		return fmt.Errorf("sampler: %w", err)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	return nil
}

// LoadConfig reads and parses a configuration file.
// Files ending in .toml are parsed as TOML, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
