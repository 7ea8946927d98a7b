package textdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconstruct_PerKindRules(t *testing.T) {
	str := func(s string) *string { return &s }

	diff := []DiffLine{
		{Kind: Unchanged, Number: 1, Original: str("keep"), Revised: str("keep")},
		{Kind: Removed, Number: 2, Original: str("gone")},
		{Kind: Added, Number: 3, Revised: str("new")},
		{Kind: Modified, Number: 4, Original: str("old text"), Revised: str("new text")},
	}

	tests := []struct {
		name     string
		accepted map[int]bool
		want     string
	}{
		{
			name:     "accept nothing restores the original",
			accepted: nil,
			want:     "keep\ngone\nold text",
		},
		{
			name:     "accept everything yields the revision",
			accepted: map[int]bool{0: true, 1: true, 2: true, 3: true},
			want:     "keep\nnew\nnew text",
		},
		{
			name:     "accepting a removal drops the line",
			accepted: map[int]bool{1: true},
			want:     "keep\nold text",
		},
		{
			name:     "rejecting an addition omits the line",
			accepted: map[int]bool{1: true, 3: true},
			want:     "keep\nnew text",
		},
		{
			name:     "accepting only the modification",
			accepted: map[int]bool{3: true},
			want:     "keep\ngone\nnew text",
		},
		{
			name:     "accepting an unchanged index is a no-op",
			accepted: map[int]bool{0: true},
			want:     "keep\ngone\nold text",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Reconstruct(diff, tc.accepted))
		})
	}
}

func TestReconstruct_IsPure(t *testing.T) {
	diff := ComputeDiff("a\nb\nc", "a\nB\nc\nd", Options{})
	accepted := map[int]bool{1: true}

	first := Reconstruct(diff, accepted)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Reconstruct(diff, accepted))
	}
	// The inputs are not mutated.
	require.NoError(t, validate(diff))
	require.Equal(t, map[int]bool{1: true}, accepted)
}

func TestReconstruct_PartialAcceptance(t *testing.T) {
	original := "foo\nbar\nbaz"
	revised := "foo\nbarbar\nbaz"
	diff := ComputeDiff(original, revised, Options{})

	// Scenario A shape: unchanged, removed "bar", added "barbar", unchanged.
	require.Len(t, diff, 4)

	// Accept only the addition: "bar" survives (its removal was rejected) and "barbar" is inserted.
	require.Equal(t, "foo\nbar\nbarbar\nbaz", Reconstruct(diff, map[int]bool{2: true}))

	// Accept only the removal: "bar" is dropped and "barbar" never lands.
	require.Equal(t, "foo\nbaz", Reconstruct(diff, map[int]bool{1: true}))
}
