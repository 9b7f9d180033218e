package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/nvandessel/affinity"
	"github.com/nvandessel/affinity/internal/constants"
	"github.com/nvandessel/affinity/internal/sanitize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score many name pairs from a YAML or JSON list",
		Long: `Score a list of name pairs concurrently.

Input is a YAML (or JSON) sequence of pairs, read from --file or stdin:

  - name1: Alice
    name2: Bob
  - name1: Zoë
    name2: Дмитрий

Pairs whose names contain no letters are reported individually and do not
stop the batch. Use --strict to exit non-zero when any pair fails.

Examples:
  affinity batch --file pairs.yaml
  cat pairs.json | affinity batch --json --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			file, _ := cmd.Flags().GetString("file")
			strict, _ := cmd.Flags().GetBool("strict")

			workers := rt.cfg.Batch.Workers
			if cmd.Flags().Changed("workers") {
				workers, _ = cmd.Flags().GetInt("workers")
			}
			if workers < 1 || workers > constants.MaxBatchWorkers {
				return fmt.Errorf("--workers must be between 1 and %d, got %d", constants.MaxBatchWorkers, workers)
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open pairs file: %w", err)
				}
				defer f.Close()
				in = f
			}

			pairs, err := readPairs(in)
			if err != nil {
				return err
			}
			rt.logger.Debug("pairs loaded", "count", len(pairs), "workers", workers)

			scorer, err := rt.newScorer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()

			results, err := scorer.ScoreBatch(ctx, pairs, workers)
			if err != nil {
				return fmt.Errorf("batch interrupted: %w", err)
			}

			failed := writeResults(cmd.OutOrStdout(), results, rt.jsonOut)
			if failed > 0 {
				rt.logger.Warn("some pairs could not be scored", "failed", failed, "total", len(results))
				if strict {
					return fmt.Errorf("%d of %d pairs could not be scored", failed, len(results))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML or JSON file with pairs (default stdin)")
	cmd.Flags().Int("workers", constants.DefaultBatchWorkers, "Pairs scored concurrently (default from config)")
	cmd.Flags().Bool("strict", false, "Exit non-zero if any pair fails")

	return cmd
}

// readPairs decodes a YAML sequence of pairs. JSON arrays parse too, since
// JSON is a subset of YAML.
func readPairs(r io.Reader) ([]affinity.Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pairs: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("no pairs given")
	}

	var pairs []affinity.Pair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to parse pairs: %w", err)
	}
	return pairs, nil
}

// writeResults prints one line per result and returns the number of failures.
func writeResults(w io.Writer, results []affinity.Result, jsonOut bool) int {
	failed := 0
	enc := json.NewEncoder(w)
	for _, r := range results {
		if r.Err != nil {
			failed++
		}

		if jsonOut {
			out := scoreOutput{Name1: r.Name1, Name2: r.Name2}
			if r.Err != nil {
				out.Error = r.Err.Error()
			} else {
				bd := r.Breakdown
				out.Score = bd.Final
				out.Breakdown = &bd
			}
			enc.Encode(out)
			continue
		}

		name1, name2 := sanitize.DisplayName(r.Name1), sanitize.DisplayName(r.Name2)
		if r.Err != nil {
			fmt.Fprintf(w, "%s + %s: error: no letters in %s\n", name1, name2, invalidArg(r.Err))
		} else {
			fmt.Fprintf(w, "%s + %s: %.1f%%\n", name1, name2, r.Breakdown.Final)
		}
	}
	return failed
}

// invalidArg names the failing argument without echoing the raw input.
func invalidArg(err error) string {
	var invalid *affinity.InvalidNameError
	if errors.As(err, &invalid) {
		return invalid.Arg
	}
	return err.Error()
}
