package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/redlinehq/redline/internal/textdiff"
)

func newDiffCommand() *cobra.Command {
	var (
		ignoreBlank bool
		contextSize int
		colorMode   string
	)

	cmd := &cobra.Command{
		Use:   "diff ORIGINAL REVISED",
		Short: "Show the classified line diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ignore-blank-lines") {
				ignoreBlank = cfg.IgnoreBlankLines
			}
			if !cmd.Flags().Changed("context") {
				contextSize = cfg.Context
			}
			if !cmd.Flags().Changed("color") {
				colorMode = cfg.Color
			}

			color, err := resolveColor(colorMode, os.Stdout)
			if err != nil {
				return err
			}

			original, revised, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}

			diff := textdiff.ComputeDiff(original, revised, textdiff.Options{
				IgnoreBlankLines:  ignoreBlank,
				ModifiedThreshold: cfg.ModifiedThreshold,
			})
			return writeOutput(cmd, "", textdiff.RenderPretty(diff, color, contextSize))
		},
	}

	cmd.Flags().BoolVar(&ignoreBlank, "ignore-blank-lines", false, "skip lines that are blank after trimming whitespace")
	cmd.Flags().IntVar(&contextSize, "context", 3, "unchanged lines to show around each change (-1 for the whole file)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")
	return cmd
}
