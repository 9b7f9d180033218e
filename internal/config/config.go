// Package config provides unified configuration loading for affinity.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/affinity/internal/constants"
	"github.com/nvandessel/affinity/internal/logging"
	"gopkg.in/yaml.v3"
)

// AffinityConfig contains all affinity configuration settings.
type AffinityConfig struct {
	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Cache contains settings for score memoization.
	Cache CacheConfig `json:"cache" yaml:"cache"`

	// Batch contains settings for batch scoring.
	Batch BatchConfig `json:"batch" yaml:"batch"`

	// Output contains settings for result rendering.
	Output OutputConfig `json:"output" yaml:"output"`
}

// LoggingConfig configures affinity's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "warn", "info" (default), "debug", or "trace".
	// "trace" logs every computed breakdown.
	Level string `json:"level" yaml:"level"`
}

// CacheConfig configures the score cache.
type CacheConfig struct {
	// Size is the number of scored pairs kept in memory. 0 disables the cache.
	Size int `json:"size" yaml:"size"`
}

// BatchConfig configures batch scoring.
type BatchConfig struct {
	// Workers is the number of pairs scored concurrently.
	Workers int `json:"workers" yaml:"workers"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	// Format is "text" (default) or "json". The --json flag overrides it.
	Format constants.Format `json:"format" yaml:"format"`
}

// Default returns an AffinityConfig with sensible defaults.
func Default() *AffinityConfig {
	return &AffinityConfig{
		Logging: LoggingConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Size: constants.DefaultCacheSize,
		},
		Batch: BatchConfig{
			Workers: constants.DefaultBatchWorkers,
		},
		Output: OutputConfig{
			Format: constants.FormatText,
		},
	}
}

// DefaultPath returns ~/.affinity/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".affinity", "config.yaml"), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.affinity/config.yaml -> environment variables
func Load() (*AffinityConfig, error) {
	config := Default()

	if configPath, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath loads configuration from path, then applies environment variables.
// An empty path behaves like Load.
func LoadPath(path string) (*AffinityConfig, error) {
	if path == "" {
		return Load()
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (*AffinityConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *AffinityConfig) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Cache.Size < 0 {
		return fmt.Errorf("cache size must be non-negative, got %d", c.Cache.Size)
	}

	if c.Batch.Workers < 1 || c.Batch.Workers > constants.MaxBatchWorkers {
		return fmt.Errorf("batch workers must be between 1 and %d, got %d", constants.MaxBatchWorkers, c.Batch.Workers)
	}

	if !c.Output.Format.Valid() {
		return fmt.Errorf("invalid output format: %s (valid: text, json)", c.Output.Format)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *AffinityConfig) {
	if v := os.Getenv("AFFINITY_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("AFFINITY_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Cache.Size = n
		}
	}

	if v := os.Getenv("AFFINITY_BATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Batch.Workers = n
		}
	}

	if v := os.Getenv("AFFINITY_OUTPUT_FORMAT"); v != "" {
		config.Output.Format = constants.Format(v)
	}
}
