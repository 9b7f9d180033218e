package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nvandessel/affinity"
	"github.com/nvandessel/affinity/internal/sanitize"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <name1> <name2>",
		Short: "Score the affinity of two names",
		Long: `Compute the Affinity Quotient of two names.

Examples:
  affinity score Alice Bob
  affinity score "Zoë Renée" "Дмитрий" --breakdown
  affinity score Alice Bob --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			showBreakdown, _ := cmd.Flags().GetBool("breakdown")

			scorer, err := rt.newScorer()
			if err != nil {
				return err
			}

			bd, err := scorer.Score(args[0], args[1])
			if err != nil {
				var invalid *affinity.InvalidNameError
				if errors.As(err, &invalid) {
					return fmt.Errorf("%w; please enter a name that contains letters", err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if rt.jsonOut {
				return json.NewEncoder(out).Encode(scoreOutput{
					Name1:     args[0],
					Name2:     args[1],
					Score:     bd.Final,
					Breakdown: &bd,
				})
			}

			fmt.Fprintf(out, "%s + %s: %.1f%%\n", sanitize.DisplayName(args[0]), sanitize.DisplayName(args[1]), bd.Final)
			if showBreakdown {
				printBreakdown(out, bd)
			}
			return nil
		},
	}

	cmd.Flags().Bool("breakdown", false, "Show the five sub-scores")

	return cmd
}

// scoreOutput is the JSON shape of one scored pair.
type scoreOutput struct {
	Name1     string              `json:"name1"`
	Name2     string              `json:"name2"`
	Score     float64             `json:"score"`
	Breakdown *affinity.Breakdown `json:"breakdown,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func printBreakdown(w io.Writer, bd affinity.Breakdown) {
	fmt.Fprintf(w, "  initial proximity (S):     %5.1f\n", bd.S)
	fmt.Fprintf(w, "  letter frequency (L):      %5.1f\n", bd.L)
	fmt.Fprintf(w, "  phonetic similarity (P):   %5.1f\n", bd.P)
	fmt.Fprintf(w, "  numerology (N):            %5.1f\n", bd.N)
	fmt.Fprintf(w, "  vowel balance (B):         %5.1f\n", bd.B)
}
