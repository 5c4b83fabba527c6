// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"service-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing policy settings
	Pricing PricingConfig `json:"pricing"`

	// Recalc contains bulk recalculation settings
	Recalc RecalcConfig `json:"recalc"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing policy settings
type PricingConfig struct {
	// MaxMarginTarget caps the margin target accepted at the input
	// boundary. Must be below 1.0 so the margin divisor stays positive.
	MaxMarginTarget float64 `json:"max_margin_target"`

	// DefaultMarginTarget is applied to new quote lines
	DefaultMarginTarget float64 `json:"default_margin_target"`

	// DefaultRiskLabel is applied to new quote sessions
	DefaultRiskLabel string `json:"default_risk_label"`

	// ReferenceFile optionally overrides the built-in reference tables
	ReferenceFile string `json:"reference_file,omitempty"`
}

// RecalcConfig contains bulk recalculation settings
type RecalcConfig struct {
	// ExemptLocations are location codes excluded from currency conversion
	ExemptLocations []string `json:"exempt_locations"`

	// Workers is the number of concurrent row workers (0 = GOMAXPROCS)
	Workers int `json:"workers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-line cost breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			MaxMarginTarget:     0.99,
			DefaultMarginTarget: 0.40,
			DefaultRiskLabel:    "Low",
		},
		Recalc: RecalcConfig{
			ExemptLocations: []string{"10", "ECUADOR"},
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
