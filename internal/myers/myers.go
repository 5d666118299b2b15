package myers

import (
	"math"

	"github.com/tamuhey/seqdiff/internal/config"
)

// Point is a coordinate in the edit graph: S indexes into x, T indexes into y.
type Point struct {
	S, T int
}

// Engine holds the forward/backward frontier arrays used by [Engine.FindMiddleSnake]. An Engine is
// reused across every recursive call of the divide-and-conquer driver in package align so that only
// one pair of O(N+M) buffers is ever allocated for a whole comparison.
type Engine[X, Y any] struct {
	x []X
	y []Y
	eq func(X, Y) bool

	tieBreak config.TieBreak

	// vf and vb store the furthest-reaching endpoint of a d-path in diagonal k at vf[v0+k] /
	// vb[v0+k]. Endpoints only store the s-coordinate since t = s - k.
	vf, vb []int
	v0     int
}

// New creates an Engine for comparing x against y using eq as the element equality predicate.
//
// The returned Engine allocates O(len(x)+len(y)) memory once; it must be reused (not recreated) for
// every recursive call against sub-rectangles of x and y.
func New[X, Y any](x []X, y []Y, eq func(X, Y) bool, tieBreak config.TieBreak) *Engine[X, Y] {
	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3 // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen)
	return &Engine[X, Y]{
		x:        x,
		y:        y,
		eq:       eq,
		tieBreak: tieBreak,
		vf:       buf[:vlen],
		vb:       buf[vlen:],
		v0:       diagonals + 1,
	}
}

// TrimCommonEnds strips the common prefix and common suffix from x[xl:xr] and y[yl:yr], returning
// the narrowed bounds. The caller is expected to record the trimmed prefix/suffix positions as
// matches directly, without invoking the engine on them.
func TrimCommonEnds[X, Y any](x []X, y []Y, eq func(X, Y) bool, xl, xr, yl, yr int) (nxl, nxr, nyl, nyr int) {
	for xl < xr && yl < yr && eq(x[xl], y[yl]) {
		xl++
		yl++
	}
	for xr > xl && yr > yl && eq(x[xr-1], y[yr-1]) {
		xr--
		yr--
	}
	return xl, xr, yl, yr
}

// FindMiddleSnake finds the endpoints of a, possibly empty, run of matches ("snake") in the middle
// of an optimal path from (xl,yl) to (xr,yr), along with d, the edit distance of the full
// sub-rectangle.
//
// x[xl:xr] and y[yl:yr] must not share a common prefix or common suffix; use [TrimCommonEnds]
// first. They may not both be empty.
func (e *Engine[X, Y]) FindMiddleSnake(xl, xr, yl, yr int) (p1, p2 Point, d int) {
	N, M := xr-xl, yr-yl
	x, y := e.x, e.y
	vf, vb := e.vf, e.vb
	v0 := e.v0
	preferInsertion := e.tieBreak == config.PreferInsertion

	// Bounds for k. Since t = s - k, we can determine the min and max for k using k = s - t.
	kmin, kmax := xl-yr, xr-yl

	// Number diagonals with consistent k's by centering the forward and backward searches around
	// different midpoints so no conversion is needed when checking for overlap.
	fmid, bmid := xl-yl, xr-yr
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The optimal path length is odd or even as (N-M) is odd or even; used below to decide when to
	// check for overlap between the two waves.
	odd := (N-M)%2 != 0

	// x[xl:xr] != y[yl:yr] (no common prefix/suffix), so there is no 0-path. The trivial d=0
	// iteration would produce:
	vf[v0+fmid] = xl
	vb[v0+bmid] = xr
	// so start at d=1 and skip special-casing d==0 in the loop below.
	for d := 1; ; d++ {
		// Forward wave.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			var s int
			if preferInsertion {
				if vf[k0-1] <= vf[k0+1] {
					s = vf[k0+1]
				} else {
					s = vf[k0-1] + 1
				}
			} else {
				if vf[k0-1] < vf[k0+1] {
					s = vf[k0+1]
				} else {
					s = vf[k0-1] + 1
				}
			}
			t := s - k

			s0, t0 := s, t
			for s < xr && t < yr && e.eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return Point{s0, t0}, Point{s, t}, 2*d - 1
			}
		}

		// Backward wave.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0

			var s int
			if preferInsertion {
				if vb[k0-1] < vb[k0+1] {
					s = vb[k0-1]
				} else {
					s = vb[k0+1] - 1
				}
			} else {
				if vb[k0-1] < vb[k0+1] {
					s = vb[k0-1]
				} else {
					s = vb[k0+1] - 1
				}
			}
			t := s - k

			s0, t0 := s, t
			for s > xl && t > yl && e.eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return Point{s, t}, Point{s0, t0}, 2 * d
			}
		}
	}
}
