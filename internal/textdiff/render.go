package textdiff

import "strings"

// Colors (ANSI) for pretty output.
const (
	ansiReset     = "\x1b[0m"
	ansiBlackFG   = "\x1b[30m"
	ansiPinkLine  = "\x1b[48;5;224m" // light pink for removed lines
	ansiPinkSpan  = "\x1b[48;5;217m" // slightly darker pink for removed segments
	ansiGreenLine = "\x1b[48;5;194m" // light green for added lines
	ansiGreenSpan = "\x1b[48;5;114m" // slightly darker green for added segments
)

// RenderPretty returns a human-oriented rendering of diff. Each line is prefixed " " for context, "-" for removed, and "+" for added; a Modified entry is
// shown as a "-" line followed by a "+" line with its intra-line changes emphasized.
//
// contextSize controls how many unchanged lines are shown around each group of changes; pass a negative value to show the whole document. A diff with no
// changes renders as the empty string unless the whole document was requested.
//
// With color, the output contains ANSI 256-color escape sequences and is intended for terminals; it is not a machine-readable patch format. Without color,
// the output is the plain marker-prefixed text.
func RenderPretty(diff []DiffLine, color bool, contextSize int) string {
	show := make([]bool, len(diff))
	if contextSize < 0 {
		for i := range show {
			show[i] = true
		}
	} else {
		for i, line := range diff {
			if line.Kind == Unchanged {
				continue
			}
			lo := i - contextSize
			if lo < 0 {
				lo = 0
			}
			hi := i + contextSize
			if hi > len(diff)-1 {
				hi = len(diff) - 1
			}
			for j := lo; j <= hi; j++ {
				show[j] = true
			}
		}
	}

	var out []string
	for i, line := range diff {
		if !show[i] {
			continue
		}
		out = append(out, renderLine(line, color)...)
	}
	return strings.Join(out, "\n")
}

// renderLine renders one DiffLine as one or two output lines.
func renderLine(line DiffLine, color bool) []string {
	if !color {
		switch line.Kind {
		case Unchanged:
			return []string{" " + *line.Original}
		case Removed:
			return []string{"-" + *line.Original}
		case Added:
			return []string{"+" + *line.Revised}
		case Modified:
			return []string{"-" + *line.Original, "+" + *line.Revised}
		}
		return nil
	}

	switch line.Kind {
	case Unchanged:
		return []string{ansiBlackFG + " " + *line.Original + ansiReset}
	case Removed:
		return []string{ansiBlackFG + ansiPinkLine + "-" + *line.Original + ansiReset}
	case Added:
		return []string{ansiBlackFG + ansiGreenLine + "+" + *line.Revised + ansiReset}
	case Modified:
		inline := ComputeInlineDiff(*line.Original, *line.Revised)
		if inline == nil {
			// One side is empty; emphasize the whole pair.
			return []string{
				ansiBlackFG + ansiPinkLine + "-" + *line.Original + ansiReset,
				ansiBlackFG + ansiGreenLine + "+" + *line.Revised + ansiReset,
			}
		}
		removed := renderSegments(inline.Original, ansiPinkLine, ansiPinkSpan)
		added := renderSegments(inline.Revised, ansiGreenLine, ansiGreenSpan)
		return []string{
			ansiBlackFG + ansiPinkLine + "-" + removed + ansiReset,
			ansiBlackFG + ansiGreenLine + "+" + added + ansiReset,
		}
	}
	return nil
}

// renderSegments renders one side of an inline diff, switching changed segments to the emphasis background and restoring the base afterwards.
func renderSegments(segments []InlineSegment, baseBg, emphasisBg string) string {
	var b strings.Builder
	for _, s := range segments {
		if !s.Changed {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(ansiReset)
		b.WriteString(ansiBlackFG)
		b.WriteString(emphasisBg)
		b.WriteString(s.Text)
		b.WriteString(ansiReset)
		b.WriteString(ansiBlackFG)
		b.WriteString(baseBg)
	}
	return b.String()
}
