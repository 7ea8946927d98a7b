package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redlinehq/redline/internal/textdiff"
	"github.com/redlinehq/redline/internal/tui"
)

func newReviewCommand() *cobra.Command {
	var (
		ignoreBlank bool
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "review ORIGINAL REVISED",
		Short: "Interactively accept or reject each change, then write the merged document",
		Args:  cobra.ExactArgs(2),
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

			result, err := tui.Run(diff)
			if err != nil {
				return err
			}
			if !result.Confirmed {
				fmt.Fprintln(cmd.ErrOrStderr(), "review aborted; nothing written")
				return nil
			}
			return writeOutput(cmd, outPath, result.Merged)
		},
	}

	cmd.Flags().BoolVar(&ignoreBlank, "ignore-blank-lines", false, "skip lines that are blank after trimming whitespace")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the merged document to this file instead of stdout")
	return cmd
}
