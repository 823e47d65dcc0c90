// Package main implements ratecalc, an operator command that prints the
// completion rate the mobile analytics screen would show for two counters.
//
// Usage:
//
//	ratecalc 2 3            # Completion Rate: 66%
//	ratecalc --json 2 3     # {"total":3,"completed":2,...}
//	ratecalc -- -1 3        # negative counts go after --
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/guessgame/completionrate/internal/domain/rate"
)

// summaryJSON is the --json output. Keys match the HTTP API.
type summaryJSON struct {
	Total          int32  `json:"total"`
	Completed      int32  `json:"completed"`
	Remaining      int32  `json:"remaining"`
	CompletionRate int32  `json:"completion_rate"`
	Label          string `json:"label"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ratecalc [--json] [--] <completed> <total>",
		Short: "Compute a task completion rate",
		Long: `Computes completed/total as an integer percentage, truncated toward zero.
A total of zero or less yields 0. Values are not clamped, so completed > total
reports more than 100%.

A leading "-" reads as a flag, so negative counts must follow "--".`,
		Example: `  ratecalc 2 3
  ratecalc --json 2 3
  ratecalc -- -1 3`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			completed, err := parseCount("completed", args[0])
			if err != nil {
				return err
			}
			total, err := parseCount("total", args[1])
			if err != nil {
				return err
			}

			summary := rate.Summarize(completed, total)
			out := cmd.OutOrStdout()

			if !asJSON {
				_, err := fmt.Fprintln(out, summary.Label())
				return err
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(summaryJSON{
				Total:          summary.Total,
				Completed:      summary.Completed,
				Remaining:      summary.Remaining,
				CompletionRate: summary.Rate,
				Label:          summary.Label(),
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full summary as JSON")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if negativeCount.MatchString(err.Error()) {
			return fmt.Errorf("%w (negative counts go after --, as in: ratecalc -- -1 3)", err)
		}
		return err
	})
	return cmd
}

// negativeCount matches pflag's complaint about an argument like -1.
var negativeCount = regexp.MustCompile(`unknown shorthand flag: '[0-9]'`)

// parseCount parses a 32-bit signed counter argument.
func parseCount(name, raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a 32-bit integer", name, raw)
	}
	return int32(v), nil
}
