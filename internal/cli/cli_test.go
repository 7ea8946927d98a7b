package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redlinehq/redline/internal/config"
)

// runCommand executes the root command with args against a fresh config location, returning stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDLINE_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDiffCommand_PlainOutput(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "old.txt", "a\nb\nc")
	revised := writeFile(t, dir, "new.txt", "a\nX\nc")

	out, err := runCommand(t, "diff", original, revised, "--color", "off")
	require.NoError(t, err)
	require.Equal(t, " a\n-b\n+X\n c\n", out)
}

func TestDiffCommand_IgnoreBlankLines(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "old.txt", "a\n\nb")
	revised := writeFile(t, dir, "new.txt", "a\nb")

	out, err := runCommand(t, "diff", original, revised, "--color", "off", "--ignore-blank-lines")
	require.NoError(t, err)
	// No changes, so nothing but the trailing newline from printing.
	require.Equal(t, "\n", out)
}

func TestDiffCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	revised := writeFile(t, dir, "new.txt", "a")

	_, err := runCommand(t, "diff", filepath.Join(dir, "missing.txt"), revised)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read original")
}

func TestApplyCommand_AcceptanceSelections(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "old.txt", "foo\nbar\nbaz")
	revised := writeFile(t, dir, "new.txt", "foo\nbarbar\nbaz")

	// Diff shape: 1 unchanged, 2 removed "bar", 3 added "barbar", 4 unchanged.
	out, err := runCommand(t, "apply", original, revised, "--accept", "none")
	require.NoError(t, err)
	require.Equal(t, "foo\nbar\nbaz\n", out)

	out, err = runCommand(t, "apply", original, revised, "--accept", "all")
	require.NoError(t, err)
	require.Equal(t, "foo\nbarbar\nbaz\n", out)

	out, err = runCommand(t, "apply", original, revised, "--accept", "3")
	require.NoError(t, err)
	require.Equal(t, "foo\nbar\nbarbar\nbaz\n", out)

	_, err = runCommand(t, "apply", original, revised, "--accept", "99")
	require.Error(t, err)
}

func TestApplyCommand_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "old.txt", "x\ny")
	revised := writeFile(t, dir, "new.txt", "x\nz\ny")
	outPath := filepath.Join(dir, "merged.txt")

	_, err := runCommand(t, "apply", original, revised, "--accept", "all", "-o", outPath)
	require.NoError(t, err)

	merged, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "x\nz\ny", string(merged))
}

func TestConfigDefaultsFlowIntoDiff(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "old.txt", "a\n\nb")
	revised := writeFile(t, dir, "new.txt", "a\nb")

	cfgPath := writeFile(t, dir, "config.toml", "ignore_blank_lines = true\ncolor = \"off\"\n")
	t.Setenv("REDLINE_CONFIG", cfgPath)

	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"diff", original, revised})
	require.NoError(t, root.Execute())
	require.Equal(t, "\n", out.String())
}

func TestResolveColor(t *testing.T) {
	on, err := resolveColor(config.ColorOn, nil)
	require.NoError(t, err)
	require.True(t, on)

	off, err := resolveColor(config.ColorOff, nil)
	require.NoError(t, err)
	require.False(t, off)

	// Auto without a terminal (nil handle) is off.
	auto, err := resolveColor(config.ColorAuto, nil)
	require.NoError(t, err)
	require.False(t, auto)

	_, err = resolveColor("sometimes", nil)
	require.Error(t, err)
}
