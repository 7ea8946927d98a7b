package textdiff

// classify rewrites a raw edit script into display-ready DiffLines, numbered sequentially from 1.
//
// The scan is a single forward pass with one-op lookahead: a removed line immediately followed by an added line collapses into one Modified entry when the
// pair's similarity meets threshold. When the pair is rejected, only the removed op is consumed; the added op is reconsidered against whatever follows it.
func classify(ops []editOp, threshold float64) []DiffLine {
	var lines []DiffLine

	emit := func(kind Kind, original, revised *string) {
		lines = append(lines, DiffLine{Kind: kind, Number: len(lines) + 1, Original: original, Revised: revised})
	}

	for i := 0; i < len(ops); {
		op := ops[i]
		switch op.kind {
		case opCommon:
			text := op.text
			emit(Unchanged, &text, &text)
			i++
		case opRemoved:
			if i+1 < len(ops) && ops[i+1].kind == opAdded && similarity(op.text, ops[i+1].text) >= threshold {
				original, revised := op.text, ops[i+1].text
				emit(Modified, &original, &revised)
				i += 2
				continue
			}
			original := op.text
			emit(Removed, &original, nil)
			i++
		case opAdded:
			revised := op.text
			emit(Added, nil, &revised)
			i++
		}
	}
	return lines
}

// similarity is the positional character-match ratio of two lines: matching rune positions over 0..min(len1,len2), divided by max(len1,len2). Both empty
// is defined as 1.0.
//
// This is a cheap positional-prefix heuristic, not an edit-distance ratio. A character inserted early shifts everything after it out of alignment, so the
// metric favors detecting changes near line ends over line starts. That bias is a deliberate trade against computing a real LCS per candidate pair.
func similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}

	shorter, longer := len(ra), len(rb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	matches := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}
