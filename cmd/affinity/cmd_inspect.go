package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nvandessel/affinity"
	"github.com/nvandessel/affinity/internal/normalize"
	"github.com/nvandessel/affinity/internal/sanitize"
	"github.com/nvandessel/affinity/internal/similarity"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show how a single name is seen by the scorer",
		Long: `Show the normalized form of a name and the per-name values the
sub-metrics are built from: phonetic code, destiny number, vowel ratio and
letter frequencies.

Examples:
  affinity inspect "Zoë Renée"
  affinity inspect Дмитрий --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			info, err := inspectName(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rt.jsonOut {
				return json.NewEncoder(out).Encode(info)
			}

			fmt.Fprintf(out, "Name:           %s\n", sanitize.DisplayName(info.Raw))
			fmt.Fprintf(out, "Normalized:     %s\n", info.Normalized)
			fmt.Fprintf(out, "Letters:        %d\n", info.Letters)
			fmt.Fprintf(out, "Phonetic code:  %s\n", info.PhoneticCode)
			fmt.Fprintf(out, "Destiny number: %d\n", info.DestinyNumber)
			fmt.Fprintf(out, "Vowel ratio:    %.3f\n", info.VowelRatio)
			fmt.Fprintf(out, "Frequencies:    %s\n", formatFrequencies(info.Frequencies))
			return nil
		},
	}
}

// nameInfo is the per-name view of the scorer.
type nameInfo struct {
	Raw           string        `json:"raw"`
	Normalized    string        `json:"normalized"`
	Letters       int           `json:"letters"`
	PhoneticCode  string        `json:"phonetic_code"`
	DestinyNumber int           `json:"destiny_number"`
	VowelRatio    float64       `json:"vowel_ratio"`
	Frequencies   []letterShare `json:"frequencies"`
}

type letterShare struct {
	Letter string  `json:"letter"`
	Share  float64 `json:"share"`
}

func inspectName(raw string) (nameInfo, error) {
	n := normalize.Normalize(raw)
	if n.Empty() {
		return nameInfo{}, &affinity.InvalidNameError{Arg: "name", Raw: raw}
	}

	profile := similarity.NewProfile(n)
	shares := make([]letterShare, 0, len(profile))
	for _, r := range profile.Letters() {
		shares = append(shares, letterShare{Letter: string(r), Share: profile[r]})
	}

	return nameInfo{
		Raw:           raw,
		Normalized:    string(n),
		Letters:       n.Len(),
		PhoneticCode:  similarity.PhoneticCode(n),
		DestinyNumber: similarity.DestinyNumber(n),
		VowelRatio:    similarity.VowelRatio(n),
		Frequencies:   shares,
	}, nil
}

func formatFrequencies(shares []letterShare) string {
	parts := make([]string, len(shares))
	for i, s := range shares {
		parts[i] = fmt.Sprintf("%s=%.2f", s.Letter, s.Share)
	}
	return strings.Join(parts, " ")
}
