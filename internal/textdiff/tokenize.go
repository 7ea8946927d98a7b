package textdiff

import "strings"

// SplitLines splits text into its line sequence on '\n'. The split never yields zero elements: an empty input is the single empty line.
//
// With ignoreBlankLines, lines that trim to empty are dropped and the survivors are renumbered sequentially by their position in the filtered sequence.
// Filtering can yield an empty sequence (for example, input that is all blank lines).
func SplitLines(text string, ignoreBlankLines bool) []string {
	lines := strings.Split(text, "\n")
	if !ignoreBlankLines {
		return lines
	}
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}
