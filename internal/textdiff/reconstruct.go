package textdiff

import "strings"

// Reconstruct rebuilds the final document from a classified diff and the set of accepted change indices (indices into diff; a nil map accepts nothing).
//
// Per-entry rules, applied in order:
//   - Unchanged: always emits the line.
//   - Removed: emits the original line unless accepted (rejecting a deletion restores the line).
//   - Added: emits the revised line only when accepted.
//   - Modified: emits the revised line when accepted, the original line otherwise.
//
// Reconstruct is a pure function of its arguments. Accepting nothing reproduces the original input exactly; accepting every index reproduces the revised
// input exactly.
func Reconstruct(diff []DiffLine, accepted map[int]bool) string {
	out := make([]string, 0, len(diff))
	for i, line := range diff {
		switch line.Kind {
		case Unchanged:
			out = append(out, *line.Original)
		case Removed:
			if !accepted[i] {
				out = append(out, *line.Original)
			}
		case Added:
			if accepted[i] {
				out = append(out, *line.Revised)
			}
		case Modified:
			if accepted[i] {
				out = append(out, *line.Revised)
			} else {
				out = append(out, *line.Original)
			}
		}
	}
	return strings.Join(out, "\n")
}
