// Package cli implements the redline command line: diff two files, apply an acceptance list non-interactively, or review changes in the terminal UI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redlinehq/redline/internal/config"
)

// Version is the redline version. It is a var (not a const) so build tooling can override it via `-ldflags "-X .../internal/cli.Version=1.2.3"`.
var Version = "0.3.0"

// New returns the root command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "redline",
		Short:         "Line-level diff, review, and merge for text files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDiffCommand())
	root.AddCommand(newApplyCommand())
	root.AddCommand(newReviewCommand())
	return root
}

// loadConfig reads the user config, honoring REDLINE_CONFIG as an override path (mainly for tests).
func loadConfig() (config.Config, error) {
	if path := os.Getenv("REDLINE_CONFIG"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// resolveColor maps a color mode to a concrete on/off decision.
func resolveColor(mode string, stdout *os.File) (bool, error) {
	switch mode {
	case config.ColorOn:
		return true, nil
	case config.ColorOff:
		return false, nil
	case config.ColorAuto:
		return stdout != nil && term.IsTerminal(int(stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid color mode %q (want auto, on, or off)", mode)
}

// readInputs loads the two files to diff.
func readInputs(originalPath, revisedPath string) (string, string, error) {
	original, err := os.ReadFile(originalPath)
	if err != nil {
		return "", "", fmt.Errorf("read original: %w", err)
	}
	revised, err := os.ReadFile(revisedPath)
	if err != nil {
		return "", "", fmt.Errorf("read revised: %w", err)
	}
	return string(original), string(revised), nil
}

// writeOutput writes text to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
