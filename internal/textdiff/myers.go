package textdiff

// opKind tags one entry of a raw edit script.
type opKind int

const (
	opCommon opKind = iota
	opRemoved
	opAdded
)

// editOp is one line of the raw Myers edit script, in original order.
type editOp struct {
	kind opKind
	text string
}

// shortestEditScript computes a minimal edit script from a to b using the greedy Myers O((n+m)*D) algorithm, comparing lines by exact equality.
//
// The forward pass records the furthest-reaching frontier for every edit distance d (the trace); once (n,m) is reached the trace is walked backwards,
// emitting opCommon for diagonal runs and a single opRemoved/opAdded for the step between d levels. Diagonals k run from -d to d, so the frontier is
// addressed through a fixed offset rather than directly.
//
// The k-1/k+1 neighbor choice below is deliberate and must not change: it is what makes the script deterministic for a given input pair.
func shortestEditScript(a, b []string) []editOp {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return nil
	}

	maxD := n + m
	offset := maxD
	frontier := make([]int, 2*maxD+1)

	// trace[d] is the frontier as it stood before level d was computed.
	var trace [][]int

	lastD := -1
search:
	for d := 0; d <= maxD; d++ {
		snapshot := make([]int, len(frontier))
		copy(snapshot, frontier)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && frontier[offset+k-1] < frontier[offset+k+1]) {
				x = frontier[offset+k+1] // step down: take a line from b
			} else {
				x = frontier[offset+k-1] + 1 // step right: drop a line from a
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			frontier[offset+k] = x
			if x >= n && y >= m {
				lastD = d
				break search
			}
		}
	}

	// Backtrack from (n,m) through the trace. Ops come out newest-first.
	var rev []editOp
	x, y := n, m
	for d := lastD; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			rev = append(rev, editOp{kind: opCommon, text: a[x-1]})
			x--
			y--
		}
		if d > 0 {
			if x == prevX {
				rev = append(rev, editOp{kind: opAdded, text: b[prevY]})
			} else {
				rev = append(rev, editOp{kind: opRemoved, text: a[prevX]})
			}
			x, y = prevX, prevY
		}
	}

	// Reverse into original order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
