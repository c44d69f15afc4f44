// Package config provides configuration management.
package config

import (
	"sync"

	"wire-drop/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Calculation contains calculation defaults
	Calculation CalculationConfig `json:"calculation"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// NoColor disables ANSI colors in the report
	NoColor bool `json:"no_color"`
}

// CalculationConfig contains calculation defaults
type CalculationConfig struct {
	// DefaultMaxDropPercent is the max acceptable voltage drop when
	// none is given on the command line.
	DefaultMaxDropPercent float64 `json:"default_max_drop_percent"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			NoColor: false,
		},
		Calculation: CalculationConfig{
			DefaultMaxDropPercent: 3.0,
		},
		Logging: logging.DefaultConfig(),
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
