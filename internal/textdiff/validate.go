package textdiff

import (
	"fmt"
	"strings"
)

// validate checks the []DiffLine invariants and returns an error on the first violation. Tests run it over every computed diff.
func validate(diff []DiffLine) error {
	for i, line := range diff {
		if line.Number != i+1 {
			return fmt.Errorf("line[%d]: Number=%d, want sequential %d", i, line.Number, i+1)
		}

		switch line.Kind {
		case Unchanged:
			if line.Original == nil || line.Revised == nil {
				return fmt.Errorf("line[%d]: Unchanged requires both sides set", i)
			}
			if *line.Original != *line.Revised {
				return fmt.Errorf("line[%d]: Unchanged requires Original==Revised", i)
			}
		case Added:
			if line.Original != nil || line.Revised == nil {
				return fmt.Errorf("line[%d]: Added requires Original==nil and Revised!=nil", i)
			}
		case Removed:
			if line.Original == nil || line.Revised != nil {
				return fmt.Errorf("line[%d]: Removed requires Original!=nil and Revised==nil", i)
			}
		case Modified:
			if line.Original == nil || line.Revised == nil {
				return fmt.Errorf("line[%d]: Modified requires both sides set", i)
			}
		default:
			return fmt.Errorf("line[%d]: unknown Kind %d", i, line.Kind)
		}

		if line.Original != nil && strings.Contains(*line.Original, "\n") {
			return fmt.Errorf("line[%d]: Original contains a newline", i)
		}
		if line.Revised != nil && strings.Contains(*line.Revised, "\n") {
			return fmt.Errorf("line[%d]: Revised contains a newline", i)
		}

		if line.Kind != Modified {
			continue
		}
		inline := ComputeInlineDiff(*line.Original, *line.Revised)
		if inline == nil {
			continue
		}
		if got := concatSegments(inline.Original); got != *line.Original {
			return fmt.Errorf("line[%d]: inline segments do not reconstruct Original (%q != %q)", i, got, *line.Original)
		}
		if got := concatSegments(inline.Revised); got != *line.Revised {
			return fmt.Errorf("line[%d]: inline segments do not reconstruct Revised (%q != %q)", i, got, *line.Revised)
		}
	}
	return nil
}

func concatSegments(segments []InlineSegment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
