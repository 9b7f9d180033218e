package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/affinity/internal/config"
	"github.com/nvandessel/affinity/internal/constants"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage affinity configuration",
		Long: `View and modify affinity configuration settings.

Configuration is stored in ~/.affinity/config.yaml unless --config is given.

Examples:
  affinity config list                   # Show all settings
  affinity config get cache.size         # Get a specific setting
  affinity config set batch.workers 8    # Set a setting`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.LoadPath(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}

			fmt.Fprintf(out, "Configuration (%s):\n", valueOrDefault(configPath, "~/.affinity/config.yaml"))
			fmt.Fprintln(out)
			for _, key := range configKeys {
				value, _ := getConfigValue(cfg, key)
				fmt.Fprintf(out, "  %-15s %v\n", key+":", value)
			}
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			configPath, _ := cmd.Flags().GetString("config")
			key := args[0]

			cfg, err := config.LoadPath(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			value, found := getConfigValue(cfg, key)
			if !found {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(out, "%s = %v\n", key, value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			configPath, _ := cmd.Flags().GetString("config")
			key, value := args[0], args[1]

			if configPath == "" {
				var err error
				configPath, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			// Start from the file alone so environment overrides are not persisted.
			cfg := config.Default()
			if _, err := os.Stat(configPath); err == nil {
				cfg, err = config.LoadFromFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}

			if err := setConfigValue(cfg, key, value); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}

			if err := saveConfig(cfg, configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"status": "updated",
					"key":    key,
					"value":  value,
				})
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

// configKeys lists the settable keys in display order.
var configKeys = []string{"logging.level", "cache.size", "batch.workers", "output.format"}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.AffinityConfig, key string) (interface{}, bool) {
	switch key {
	case "logging.level":
		return cfg.Logging.Level, true
	case "cache.size":
		return cfg.Cache.Size, true
	case "batch.workers":
		return cfg.Batch.Workers, true
	case "output.format":
		return cfg.Output.Format.String(), true
	default:
		return nil, false
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.AffinityConfig, key, value string) error {
	switch key {
	case "logging.level":
		cfg.Logging.Level = value
	case "cache.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.size must be an integer: %w", err)
		}
		cfg.Cache.Size = n
	case "batch.workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("batch.workers must be an integer: %w", err)
		}
		cfg.Batch.Workers = n
	case "output.format":
		cfg.Output.Format = constants.Format(value)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// saveConfig writes the configuration to path as YAML.
func saveConfig(cfg *config.AffinityConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
