// Package config loads keypadchain settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keypadchain/oracle"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "keypadchain.yaml"

// Environment variables that override file values.
const (
	EnvDepths   = "KEYPADCHAIN_DEPTHS"
	EnvLogLevel = "KEYPADCHAIN_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all CLI settings.
type Config struct {
	// Depths lists the chain depths solved by default.
	Depths []int `yaml:"depths"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	CrossCheck CrossCheckConfig `yaml:"validate"`
	Explain    ExplainConfig    `yaml:"explain"`
}

// CrossCheckConfig controls cross-checking against the explicit simulator.
type CrossCheckConfig struct {
	// MaxDepth is the deepest chain the simulator is run on.
	MaxDepth int `yaml:"max_depth"`
	// MaxStates caps simulator states; 0 means unlimited.
	MaxStates int `yaml:"max_states"`
}

// ExplainConfig controls sequence reconstruction.
type ExplainConfig struct {
	// MaxLength refuses sequences longer than this; at most
	// oracle.MaxExpandCeiling.
	MaxLength int64 `yaml:"max_length"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Depths:   []int{2, 25},
		LogLevel: "info",
		CrossCheck: CrossCheckConfig{
			MaxDepth:  2,
			MaxStates: 5_000_000,
		},
		Explain: ExplainConfig{
			MaxLength: 1 << 16,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvDepths); v != "" {
		depths, err := ParseDepths(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDepths, err)
		}
		c.Depths = depths
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// ParseDepths reads a comma-separated list such as "2,25".
func ParseDepths(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: depth %q", ErrInvalid, f)
		}
		out = append(out, n)
	}

	return out, nil
}

// Validate checks that the configuration can be acted on.
func (c *Config) Validate() error {
	if len(c.Depths) == 0 {
		return fmt.Errorf("%w: at least one depth is required", ErrInvalid)
	}
	for _, d := range c.Depths {
		if d < 0 {
			return fmt.Errorf("%w: depth %d is negative", ErrInvalid, d)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.CrossCheck.MaxDepth < 0 {
		return fmt.Errorf("%w: validate.max_depth %d is negative", ErrInvalid, c.CrossCheck.MaxDepth)
	}
	if c.CrossCheck.MaxStates < 0 {
		return fmt.Errorf("%w: validate.max_states %d is negative", ErrInvalid, c.CrossCheck.MaxStates)
	}
	if c.Explain.MaxLength <= 0 {
		return fmt.Errorf("%w: explain.max_length must be positive", ErrInvalid)
	}
	if c.Explain.MaxLength > oracle.MaxExpandCeiling {
		return fmt.Errorf("%w: explain.max_length %d exceeds %d",
			ErrInvalid, c.Explain.MaxLength, oracle.MaxExpandCeiling)
	}

	return nil
}
