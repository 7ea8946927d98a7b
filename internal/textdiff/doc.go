// Package textdiff compares an "original" and a "revised" string line by line and supports merging an arbitrary subset of the changes back into a final document.
//
// Representation: ComputeDiff returns an ordered []DiffLine covering both inputs. Each DiffLine has a Kind:
//   - Unchanged: the line is present in both inputs (Original and Revised are both set and equal)
//   - Added: the line is present only in the revised input (Original is nil)
//   - Removed: the line is present only in the original input (Revised is nil)
//   - Modified: a removed line and an added line were similar enough to pair up (Original and Revised are both set)
//
// Invariants:
//   - DiffLine numbering is 1-based and sequential in emission order.
//   - Exactly one of Original/Revised is nil iff Kind is Added or Removed; both are set iff Kind is Unchanged or Modified.
//   - The Unchanged+Removed+Modified lines, in order, are exactly the original input's lines; Unchanged+Added+Modified are exactly the revised input's lines.
//   - Reconstruct(diff, nil) returns the original input verbatim; accepting every index returns the revised input verbatim.
//
// The underlying edit script is a Myers shortest edit script over lines, so the set of changes is minimal and deterministic: identical inputs always produce
// an identical diff.
//
// For a Modified line, ComputeInlineDiff produces per-token highlighting for both sides. Segments are positional (token i of one side is compared to token i
// of the other), which keeps them cheap but means a length divergence marks the whole tail changed. Concatenating either side's segment texts always
// reconstructs that side's line exactly.
//
// Computing a diff and applying a merge:
//
//	diff := textdiff.ComputeDiff(original, revised, textdiff.Options{})
//	accepted := map[int]bool{1: true}     // accept the change at diff[1]
//	final := textdiff.Reconstruct(diff, accepted)
//
// Rendering: RenderPretty emits a terminal-oriented view with "+"/"-"/" " markers and optional ANSI highlighting of intra-line changes. It is not a
// machine-readable patch format.
//
// Newlines: '\n' is the line separator. Inputs are split on it and Reconstruct joins with it; no other separator is recognized.
package textdiff
