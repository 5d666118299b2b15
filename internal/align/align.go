// Package align implements the divide-and-conquer driver that turns the
// bidirectional snake engine in package myers into a full alignment between
// two sequences.
package align

import (
	"github.com/tamuhey/seqdiff/internal/config"
	"github.com/tamuhey/seqdiff/internal/myers"
)

// NoMatch is the sentinel value for "this element has no aligned partner".
// Mirrors the public seqdiff.NoMatch constant; duplicated here so this
// package has no dependency on the root package.
const NoMatch = -1

// NewBuffers allocates the pair of result buffers Solve writes into, both
// pre-filled with NoMatch. A single backing array is allocated for both
// buffers, the same single-allocation trick the teacher uses for its own
// paired bool result vectors.
func NewBuffers(n, m int) (a2b, b2a []int) {
	buf := make([]int, n+m)
	for i := range buf {
		buf[i] = NoMatch
	}
	return buf[:n:n], buf[n:]
}

// Solve aligns x against y using eq as the element equality predicate and
// cfg to resolve ties on equal-length optimal paths. It returns a2b and b2a,
// each pre-sized to len(x) and len(y) respectively, with a2b[i] = j and
// b2a[j] = i wherever x[i] and y[j] are aligned, and NoMatch elsewhere.
func Solve[X, Y any](x []X, y []Y, eq func(X, Y) bool, cfg config.Config) (a2b, b2a []int) {
	a2b, b2a = NewBuffers(len(x), len(y))

	xl, xr, yl, yr := myers.TrimCommonEnds(x, y, eq, 0, len(x), 0, len(y))
	for i, j := 0, 0; i < xl && j < yl; i, j = i+1, j+1 {
		a2b[i] = j
		b2a[j] = i
	}
	for i, j := xr, yr; i < len(x) && j < len(y); i, j = i+1, j+1 {
		a2b[i] = j
		b2a[j] = i
	}

	if xl == xr && yl == yr {
		return a2b, b2a
	}

	e := myers.New(x, y, eq, cfg.TieBreak)
	var compare func(xl, xr, yl, yr int)
	compare = func(xl, xr, yl, yr int) {
		switch {
		case xl == xr || yl == yr:
			// Nothing left to match: a pure run of deletions or insertions.
			return
		default:
			// FindMiddleSnake needs a sub-rectangle without a common prefix or
			// suffix, so record those as matches first.
			nxl, nxr, nyl, nyr := myers.TrimCommonEnds(x, y, eq, xl, xr, yl, yr)
			for i, j := xl, yl; i < nxl; i, j = i+1, j+1 {
				a2b[i] = j
				b2a[j] = i
			}
			for i, j := nxr, nyr; i < xr; i, j = i+1, j+1 {
				a2b[i] = j
				b2a[j] = i
			}
			xl, xr, yl, yr = nxl, nxr, nyl, nyr
			if xl == xr || yl == yr {
				return
			}
			p1, p2, _ := e.FindMiddleSnake(xl, xr, yl, yr)

			// (xl,yl)-(p1.S,p1.T) and (p2.S,p2.T)-(xr,yr) are the two strictly
			// smaller sub-rectangles either side of the middle snake; recurse
			// into the first, record the snake's own matches, then recurse
			// into the second.
			compare(xl, p1.S, yl, p1.T)
			for i, j := p1.S, p1.T; i < p2.S; i, j = i+1, j+1 {
				a2b[i] = j
				b2a[j] = i
			}
			compare(p2.S, xr, p2.T, yr)
		}
	}
	compare(xl, xr, yl, yr)

	return a2b, b2a
}

// Distance returns the edit distance (Levenshtein distance) between x and y
// without writing an alignment. Used by Ratio/RatioFunc, which only need
// the scalar distance and can skip every buffer allocation and write Solve
// performs.
//
// A single call to FindMiddleSnake on the trimmed rectangle already returns
// the exact total distance for that whole rectangle (not just a split
// point), so unlike Solve this never recurses.
func Distance[X, Y any](x []X, y []Y, eq func(X, Y) bool, cfg config.Config) int {
	xl, xr, yl, yr := myers.TrimCommonEnds(x, y, eq, 0, len(x), 0, len(y))

	switch {
	case xl == xr && yl == yr:
		return 0
	case xl == xr:
		return yr - yl
	case yl == yr:
		return xr - xl
	}

	e := myers.New(x, y, eq, cfg.TieBreak)
	_, _, d := e.FindMiddleSnake(xl, xr, yl, yr)
	return d
}
