package textdiff

// Kind classifies a DiffLine.
type Kind int

// DiffLine kinds.
const (
	Unchanged Kind = iota
	Added
	Removed
	Modified
)

// String returns the lowercase name of k, for logs and rendering.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return "unknown"
}

// DiffLine is one display-ready line of a diff.
//
// Invariants:
//   - Number is 1-based and sequential across the whole diff, in emission order.
//   - Kind Added: Original == nil, Revised != nil.
//   - Kind Removed: Original != nil, Revised == nil.
//   - Kind Unchanged: both set, *Original == *Revised.
//   - Kind Modified: both set.
type DiffLine struct {
	Kind     Kind
	Number   int
	Original *string // Original-side line without trailing newline; nil for Added.
	Revised  *string // Revised-side line without trailing newline; nil for Removed.
}

// InlineSegment is one run of a line, flagged changed or not. Segments for one side of a Modified line concatenate back to that side's full text.
type InlineSegment struct {
	Text    string
	Changed bool
}

// InlineDiff holds the per-side segments for one Modified line pair.
type InlineDiff struct {
	Original []InlineSegment
	Revised  []InlineSegment
}

// defaultModifiedThreshold is the similarity at or above which a removed+added pair collapses into a single Modified line.
const defaultModifiedThreshold = 0.6

// Options configures ComputeDiff.
type Options struct {
	// IgnoreBlankLines drops lines that are empty after trimming whitespace from both inputs before diffing. Display numbering is sequential over the
	// filtered sequences; the caller's absolute line numbers are not preserved.
	IgnoreBlankLines bool

	// ModifiedThreshold overrides the similarity cutoff for pairing a removed line with the added line that follows it. Zero (or negative) means the
	// default of 0.6.
	ModifiedThreshold float64
}

func (o Options) threshold() float64 {
	if o.ModifiedThreshold <= 0 {
		return defaultModifiedThreshold
	}
	return o.ModifiedThreshold
}

// ComputeDiff diffs original to revised and returns the classified line sequence.
//
// It is a total, pure function: any pair of strings (empty, identical, fully disjoint) produces a valid diff. Cost is O((n+m)*D) in lines and edit
// distance, quadratic in the worst case; callers diffing very large inputs should impose their own size ceiling.
func ComputeDiff(original, revised string, opts Options) []DiffLine {
	a := SplitLines(original, opts.IgnoreBlankLines)
	b := SplitLines(revised, opts.IgnoreBlankLines)
	return classify(shortestEditScript(a, b), opts.threshold())
}
