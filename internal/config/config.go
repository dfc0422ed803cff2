// Package config loads the lvlpuzzle YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlpuzzle/flow"
	"github.com/katalvlaran/lvlpuzzle/internal/logging"
)

// Environment variables that override file values.
const (
	EnvLogLevel    = "LVLPUZZLE_LOG_LEVEL"
	EnvConcurrency = "LVLPUZZLE_CONCURRENCY"
)

// Config holds all lvlpuzzle settings.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`

	// Concurrency bounds how many batch cases run at once.
	Concurrency int `yaml:"concurrency"`

	// Flow solver defaults
	Flow FlowConfig `yaml:"flow"`
}

// FlowConfig configures the max-flow solver.
type FlowConfig struct {
	Strategy string `yaml:"strategy"` // widest, bfs, dfs
	Infinity int64  `yaml:"infinity"` // 0 derives it from the capacities
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Concurrency: runtime.NumCPU(),
		Flow: FlowConfig{
			Strategy: flow.WidestFirst.String(),
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
	if n := os.Getenv(EnvConcurrency); n != "" {
		v, err := strconv.Atoi(n)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		c.Concurrency = v
	}

	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := logging.Parse(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, err := flow.ParseStrategy(c.Flow.Strategy); err != nil {
		return fmt.Errorf("flow.strategy: %w", err)
	}
	if c.Flow.Infinity < 0 {
		return fmt.Errorf("flow.infinity must not be negative, got %d", c.Flow.Infinity)
	}

	return nil
}

// FlowOptions converts the flow section into solver options.
func (c *Config) FlowOptions() (flow.Options, error) {
	opts := flow.DefaultOptions()
	s, err := flow.ParseStrategy(c.Flow.Strategy)
	if err != nil {
		return opts, err
	}
	opts.Strategy = s
	opts.Infinity = c.Flow.Infinity
	opts.Verbose = c.Flow.Verbose

	return opts, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
