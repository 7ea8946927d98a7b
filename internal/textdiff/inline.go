package textdiff

import "unicode"

// ComputeInlineDiff produces per-token highlighting for one Modified line pair. It returns nil when either side is empty: there is nothing meaningful to
// highlight against, and callers render the whole line as changed instead.
//
// Both lines are tokenized into maximal runs of whitespace and non-whitespace, and the token arrays are compared by shared index. A position where the
// tokens differ (including positions past the shorter array's end) marks that position changed on both sides. The comparison is positional, not an LCS:
// once the arrays diverge in length, every later token is flagged even if it reappears verbatim on the other side. Regardless, concatenating the Text of
// either side's segments reconstructs that side's input exactly.
func ComputeInlineDiff(originalLine, revisedLine string) *InlineDiff {
	if originalLine == "" || revisedLine == "" {
		return nil
	}

	originalTokens := splitTokens(originalLine)
	revisedTokens := splitTokens(revisedLine)

	longest := len(originalTokens)
	if len(revisedTokens) > longest {
		longest = len(revisedTokens)
	}

	result := &InlineDiff{}
	for i := 0; i < longest; i++ {
		switch {
		case i >= len(originalTokens):
			result.Revised = append(result.Revised, InlineSegment{Text: revisedTokens[i], Changed: true})
		case i >= len(revisedTokens):
			result.Original = append(result.Original, InlineSegment{Text: originalTokens[i], Changed: true})
		default:
			changed := originalTokens[i] != revisedTokens[i]
			result.Original = append(result.Original, InlineSegment{Text: originalTokens[i], Changed: changed})
			result.Revised = append(result.Revised, InlineSegment{Text: revisedTokens[i], Changed: changed})
		}
	}
	return result
}

// splitTokens splits a line into maximal runs of whitespace and non-whitespace. Whitespace runs are tokens themselves, so concatenating the tokens
// reproduces the line verbatim.
func splitTokens(line string) []string {
	var tokens []string
	runes := []rune(line)
	for i := 0; i < len(runes); {
		inSpace := unicode.IsSpace(runes[i])
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) == inSpace {
			j++
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return tokens
}
