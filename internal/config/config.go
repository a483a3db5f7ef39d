// Package config provides unified configuration for the Heapbench tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultCVThresholdPercent is the coefficient-of-variation threshold below
// which measured growth is reported as consistent with Theta(n log n).
// This is a reporting convention inherited from the reference analysis, not
// a statistical hypothesis test; override it via config file, environment,
// or flag when probing boundary behavior.
const DefaultCVThresholdPercent = 15.0

// DefaultOutputDir is where exported numeric series are written for the
// external rendering step.
const DefaultOutputDir = "docs/performance-plots"

// Config holds the unified configuration for the Heapbench tools.
type Config struct {
	// Verify holds complexity-verification settings
	Verify VerifyConfig `json:"verify" yaml:"verify"`

	// Engine holds aggregation engine settings
	Engine EngineConfig `json:"engine" yaml:"engine"`

	// Export holds series export settings
	Export ExportConfig `json:"export" yaml:"export"`
}

// VerifyConfig holds complexity-verification settings.
type VerifyConfig struct {
	// CVThresholdPercent is the coefficient-of-variation acceptance
	// threshold for the verification summary
	CVThresholdPercent float64 `json:"cv_threshold_percent" yaml:"cv_threshold_percent"`
}

// EngineConfig holds aggregation engine settings.
type EngineConfig struct {
	// Concurrency is the number of workers used for per-size aggregation.
	// Values <= 1 select the sequential path. Per-size groups are disjoint,
	// so fan-out is safe; results are re-sorted by size before return.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// ExportConfig holds series export settings.
type ExportConfig struct {
	// Enabled controls whether numeric series are written for the renderer
	Enabled bool `json:"enabled" yaml:"enabled"`

	// OutputDir is the directory series files are written to, created if
	// absent
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Verify: VerifyConfig{
			CVThresholdPercent: DefaultCVThresholdPercent,
		},
		Engine: EngineConfig{
			Concurrency: 1,
		},
		Export: ExportConfig{
			Enabled:   true,
			OutputDir: DefaultOutputDir,
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment, if one exists. Missing files are not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the HEAPBENCH_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("HEAPBENCH_CV_THRESHOLD_PERCENT"); v != "" {
		fmt.Sscanf(v, "%f", &cfg.Verify.CVThresholdPercent)
	}
	if v := os.Getenv("HEAPBENCH_ENGINE_CONCURRENCY"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Engine.Concurrency)
	}
	if v := os.Getenv("HEAPBENCH_EXPORT_ENABLED"); v != "" {
		cfg.Export.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("HEAPBENCH_EXPORT_OUTPUT_DIR"); v != "" {
		cfg.Export.OutputDir = v
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Verify.CVThresholdPercent <= 0 {
		return fmt.Errorf("verify.cv_threshold_percent must be positive, got %v", c.Verify.CVThresholdPercent)
	}
	if c.Engine.Concurrency < 0 {
		return fmt.Errorf("engine.concurrency must be non-negative, got %d", c.Engine.Concurrency)
	}
	if c.Export.Enabled && c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir must be set when export is enabled")
	}
	return nil
}

// EnsureDirectories creates all required directories.
func (c *Config) EnsureDirectories() error {
	if !c.Export.Enabled || c.Export.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Export.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Export.OutputDir, err)
	}
	return nil
}
