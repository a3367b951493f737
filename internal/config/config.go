// Package config loads the application configuration from environment
// variables (prefix MENUPULSE) layered over an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// AnalysisConfig contains the analysis parameters
type AnalysisConfig struct {
	// TopItems is the N of the top-N revenue ranking.
	TopItems int `yaml:"top_items" envconfig:"TOP_ITEMS"`
	// GrowthVolumeFloor drops items whose combined half-year revenue
	// does not exceed it.
	GrowthVolumeFloor float64 `yaml:"growth_volume_floor" envconfig:"GROWTH_VOLUME_FLOOR"`
	// GrowthTopK bounds the rising/fading lists.
	GrowthTopK int `yaml:"growth_top_k" envconfig:"GROWTH_TOP_K"`
	// GrowthBaseline is "epsilon" or "sentinel".
	GrowthBaseline string `yaml:"growth_baseline" envconfig:"GROWTH_BASELINE"`
	// ParetoMaxRows caps the displayed Pareto ranking.
	ParetoMaxRows int `yaml:"pareto_max_rows" envconfig:"PARETO_MAX_ROWS"`
	// ParetoTargetPct is the cumulative-share threshold.
	ParetoTargetPct float64 `yaml:"pareto_target_pct" envconfig:"PARETO_TARGET_PCT"`
}

// Load loads configuration from the optional YAML file and the
// environment (environment takes precedence), applies defaults, then
// validates.
func Load() (*Config, error) {
	var cfg Config

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = *fileCfg
	}

	// Environment variables override file values.
	if err := envconfig.Process("MENUPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// configFilePath returns the YAML config location, overridable via
// MENUPULSE_CONFIG_FILE.
func configFilePath() string {
	if path := os.Getenv("MENUPULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the reference values
func (c *Config) applyDefaults() {
	if c.Paths.ReportsDir == "" {
		c.Paths.ReportsDir = "reports"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Analysis.TopItems == 0 {
		c.Analysis.TopItems = 10
	}
	if c.Analysis.GrowthVolumeFloor == 0 {
		c.Analysis.GrowthVolumeFloor = 500
	}
	if c.Analysis.GrowthTopK == 0 {
		c.Analysis.GrowthTopK = 10
	}
	if c.Analysis.GrowthBaseline == "" {
		c.Analysis.GrowthBaseline = "epsilon"
	}
	if c.Analysis.ParetoMaxRows == 0 {
		c.Analysis.ParetoMaxRows = 20
	}
	if c.Analysis.ParetoTargetPct == 0 {
		c.Analysis.ParetoTargetPct = 80
	}
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	switch c.Analysis.GrowthBaseline {
	case "epsilon", "sentinel":
	default:
		return fmt.Errorf("invalid growth baseline policy: %s", c.Analysis.GrowthBaseline)
	}

	if c.Analysis.TopItems < 1 {
		return fmt.Errorf("top_items must be positive, got %d", c.Analysis.TopItems)
	}
	if c.Analysis.GrowthTopK < 1 {
		return fmt.Errorf("growth_top_k must be positive, got %d", c.Analysis.GrowthTopK)
	}
	if c.Analysis.GrowthVolumeFloor < 0 {
		return fmt.Errorf("growth_volume_floor must not be negative, got %g", c.Analysis.GrowthVolumeFloor)
	}
	if c.Analysis.ParetoMaxRows < 1 {
		return fmt.Errorf("pareto_max_rows must be positive, got %d", c.Analysis.ParetoMaxRows)
	}
	if c.Analysis.ParetoTargetPct <= 0 || c.Analysis.ParetoTargetPct > 100 {
		return fmt.Errorf("pareto_target_pct must be in (0, 100], got %g", c.Analysis.ParetoTargetPct)
	}

	return nil
}
