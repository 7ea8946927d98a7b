package textdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"both empty", "", "", 1.0},
		{"one empty", "", "abc", 0.0},
		{"identical", "same", "same", 1.0},
		{"bar vs barbar", "bar", "barbar", 0.5},
		{"three of five", "abcde", "abcXY", 0.6},
		{"disjoint", "abc", "xyz", 0.0},
		{"early insert shifts alignment", "world", "xworld", 0.0},
		{"multibyte runes counted as single positions", "héllo", "héllo", 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, similarity(tc.a, tc.b), 1e-9)
			require.InDelta(t, tc.want, similarity(tc.b, tc.a), 1e-9)
		})
	}
}

func TestClassify_PairingRules(t *testing.T) {
	tests := []struct {
		name string
		ops  []editOp
		want []lineExpectation
	}{
		{
			name: "empty script",
			ops:  nil,
			want: []lineExpectation{},
		},
		{
			name: "common only",
			ops:  []editOp{{opCommon, "a"}, {opCommon, "b"}},
			want: []lineExpectation{
				{Unchanged, "a", "a"},
				{Unchanged, "b", "b"},
			},
		},
		{
			name: "similar remove+add pairs into modified",
			ops:  []editOp{{opRemoved, "foobar"}, {opAdded, "foobaz"}},
			want: []lineExpectation{{Modified, "foobar", "foobaz"}},
		},
		{
			name: "dissimilar remove+add stays split",
			ops:  []editOp{{opRemoved, "abcde"}, {opAdded, "vwxyz"}},
			want: []lineExpectation{
				{Removed, "abcde", ""},
				{Added, "", "vwxyz"},
			},
		},
		{
			name: "second removed can claim the added after the first is rejected",
			ops:  []editOp{{opRemoved, "zzzzz"}, {opRemoved, "fooba"}, {opAdded, "foobZ"}},
			want: []lineExpectation{
				{Removed, "zzzzz", ""},
				{Modified, "fooba", "foobZ"},
			},
		},
		{
			name: "added before removed never pairs",
			ops:  []editOp{{opAdded, "foobar"}, {opRemoved, "foobaz"}},
			want: []lineExpectation{
				{Added, "", "foobar"},
				{Removed, "foobaz", ""},
			},
		},
		{
			name: "common between remove and add blocks pairing",
			ops:  []editOp{{opRemoved, "foobar"}, {opCommon, "keep"}, {opAdded, "foobaz"}},
			want: []lineExpectation{
				{Removed, "foobar", ""},
				{Unchanged, "keep", "keep"},
				{Added, "", "foobaz"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := classify(tc.ops, defaultModifiedThreshold)
			require.NoError(t, validate(lines))
			require.Equal(t, tc.want, expectationsOf(t, lines))
		})
	}
}

func TestClassify_NumbersAreSequential(t *testing.T) {
	ops := []editOp{
		{opCommon, "a"},
		{opRemoved, "abcde"},
		{opAdded, "vwxyz"},
		{opCommon, "b"},
		{opRemoved, "foobar"},
		{opAdded, "foobaz"},
	}
	lines := classify(ops, defaultModifiedThreshold)
	require.NoError(t, validate(lines))
	for i, line := range lines {
		require.Equal(t, i+1, line.Number)
	}
	// The trailing similar pair collapses, so the count is 5, not 6.
	require.Len(t, lines, 5)
}
