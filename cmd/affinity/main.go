package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/nvandessel/affinity"
	"github.com/nvandessel/affinity/internal/config"
	"github.com/nvandessel/affinity/internal/constants"
	"github.com/nvandessel/affinity/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "affinity",
		Short: "Affinity Quotient - deterministic name compatibility scores",
		Long: `affinity scores the compatibility of two names as a percentage.

The score combines five sub-metrics (initial proximity, letter frequency,
phonetic similarity, numerology and vowel balance) with fixed weights.
Names may use any script; non-letters are ignored. The result is an
entertainment artifact: deterministic and symmetric, not scientific.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.affinity/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: warn, info, debug, trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScoreCmd(),
		newBatchCmd(),
		newInspectCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "affinity version %s\n", version)
			}
		},
	}
}

// cliEnv is the resolved configuration shared by every command.
type cliEnv struct {
	cfg     *config.AffinityConfig
	logger  *slog.Logger
	jsonOut bool
}

// loadRuntime resolves config file, environment and flags, in that order.
func loadRuntime(cmd *cobra.Command) (*cliEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if cfg.Output.Format == constants.FormatJSON {
		jsonOut = true
	}

	var logger *slog.Logger
	if jsonOut {
		logger = logging.NewJSONLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	} else {
		logger = logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	}
	logger.Debug("configuration loaded",
		"config", valueOrDefault(configPath, "(default)"),
		"cache_size", cfg.Cache.Size,
		"batch_workers", cfg.Batch.Workers)

	return &cliEnv{cfg: cfg, logger: logger, jsonOut: jsonOut}, nil
}

func (rt *cliEnv) newScorer() (*affinity.Scorer, error) {
	return affinity.NewScorer(
		affinity.WithCacheSize(rt.cfg.Cache.Size),
		affinity.WithLogger(rt.logger),
	)
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
