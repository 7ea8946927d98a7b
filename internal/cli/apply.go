package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redlinehq/redline/internal/textdiff"
)

func newApplyCommand() *cobra.Command {
	var (
		ignoreBlank bool
		acceptSpec  string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "apply ORIGINAL REVISED",
		Short: "Merge an explicit set of accepted changes and print or write the result",
		Long: `Apply diffs ORIGINAL against REVISED, accepts the changes named by --accept, and emits the merged document.

--accept takes "all", "none", or a comma-separated list of display line numbers and ranges as printed by "redline diff", e.g. --accept 2,5,9-12. Rejected
removals keep their line; rejected additions are dropped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ignore-blank-lines") {
				ignoreBlank = cfg.IgnoreBlankLines
			}

			original, revised, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}

			diff := textdiff.ComputeDiff(original, revised, textdiff.Options{
				IgnoreBlankLines:  ignoreBlank,
				ModifiedThreshold: cfg.ModifiedThreshold,
			})

			accepted, err := parseAcceptance(acceptSpec, len(diff))
			if err != nil {
				return err
			}
			return writeOutput(cmd, outPath, textdiff.Reconstruct(diff, accepted))
		},
	}

	cmd.Flags().BoolVar(&ignoreBlank, "ignore-blank-lines", false, "skip lines that are blank after trimming whitespace")
	cmd.Flags().StringVar(&acceptSpec, "accept", "none", `changes to accept: "all", "none", or line numbers like 2,5,9-12`)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the merged document to this file instead of stdout")
	return cmd
}

// parseAcceptance converts an --accept value into a set of 0-based diff indices. Numbers in the spec are the 1-based display numbers shown by "redline
// diff".
func parseAcceptance(spec string, diffLen int) (map[int]bool, error) {
	accepted := make(map[int]bool)

	switch strings.TrimSpace(spec) {
	case "", "none":
		return accepted, nil
	case "all":
		for i := 0; i < diffLen; i++ {
			accepted[i] = true
		}
		return accepted, nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty entry in --accept list %q", spec)
		}

		lo, hi := part, part
		if dash := strings.Index(part, "-"); dash >= 0 {
			lo, hi = part[:dash], part[dash+1:]
		}
		first, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid line number %q in --accept list", lo)
		}
		last, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid line number %q in --accept list", hi)
		}
		if first > last {
			return nil, fmt.Errorf("backwards range %q in --accept list", part)
		}
		for n := first; n <= last; n++ {
			if n < 1 || n > diffLen {
				return nil, fmt.Errorf("line number %d is outside the diff (1-%d)", n, diffLen)
			}
			accepted[n-1] = true
		}
	}
	return accepted, nil
}
