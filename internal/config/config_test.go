package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointConfigFile makes Load read the given YAML path instead of the
// working directory's config.yaml.
func pointConfigFile(t *testing.T, path string) {
	t.Helper()
	t.Setenv("MENUPULSE_CONFIG_FILE", path)
}

func TestLoadDefaults(t *testing.T) {
	pointConfigFile(t, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Analysis.TopItems)
	assert.Equal(t, 500.0, cfg.Analysis.GrowthVolumeFloor)
	assert.Equal(t, 10, cfg.Analysis.GrowthTopK)
	assert.Equal(t, "epsilon", cfg.Analysis.GrowthBaseline)
	assert.Equal(t, 20, cfg.Analysis.ParetoMaxRows)
	assert.Equal(t, 80.0, cfg.Analysis.ParetoTargetPct)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `paths:
  input_file: sales.csv
  reports_dir: out
logging:
  level: debug
  format: json
analysis:
  top_items: 5
  growth_volume_floor: 250
  growth_baseline: sentinel
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	pointConfigFile(t, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sales.csv", cfg.Paths.InputFile)
	assert.Equal(t, "out", cfg.Paths.ReportsDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5, cfg.Analysis.TopItems)
	assert.Equal(t, 250.0, cfg.Analysis.GrowthVolumeFloor)
	assert.Equal(t, "sentinel", cfg.Analysis.GrowthBaseline)
	// Unset fields still fall back to defaults.
	assert.Equal(t, 10, cfg.Analysis.GrowthTopK)
	assert.Equal(t, 20, cfg.Analysis.ParetoMaxRows)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `analysis:
  top_items: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	pointConfigFile(t, path)
	t.Setenv("MENUPULSE_ANALYSIS_TOP_ITEMS", "3")
	t.Setenv("MENUPULSE_LOGGING_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Analysis.TopItems)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [not a map"), 0644))
	pointConfigFile(t, path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
		{
			name:    "bad growth baseline",
			mutate:  func(c *Config) { c.Analysis.GrowthBaseline = "zero" },
			wantErr: "invalid growth baseline policy",
		},
		{
			name:    "negative top items",
			mutate:  func(c *Config) { c.Analysis.TopItems = -1 },
			wantErr: "top_items must be positive",
		},
		{
			name:    "negative volume floor",
			mutate:  func(c *Config) { c.Analysis.GrowthVolumeFloor = -1 },
			wantErr: "growth_volume_floor must not be negative",
		},
		{
			name:    "pareto target over 100",
			mutate:  func(c *Config) { c.Analysis.ParetoTargetPct = 120 },
			wantErr: "pareto_target_pct must be in (0, 100]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
