package seqdiff

import (
	"github.com/tamuhey/seqdiff/internal/align"
	"github.com/tamuhey/seqdiff/internal/config"
)

// NoMatch is the value stored in an [Alignment] for an element with no aligned partner.
const NoMatch = -1

// Alignment maps every element of one sequence to its aligned partner in the other, or to
// [NoMatch] if the element was deleted or inserted. For a2b returned from [Diff] or [DiffFunc],
// len(a2b) == len(a) and a2b[i] == j means a[i] is aligned with b[j]; for b2a, len(b2a) == len(b)
// and b2a[j] == i means the same pairing viewed from b's side. a2b[i] == j if and only if
// b2a[j] == i.
type Alignment []int

// Diff compares a and b using native equality and returns the alignment between them: a2b[i] is
// the index into b that a[i] is matched to, or [NoMatch]; b2a is the same alignment viewed from
// b's side.
//
// The returned alignment is optimal: it always has the maximum possible number of matches (an
// exact longest common subsequence), never a heuristic approximation.
func Diff[T comparable](a, b []T, opts ...Option) (a2b, b2a Alignment) {
	return DiffFunc(a, b, func(x, y T) bool { return x == y }, opts...)
}

// DiffFunc compares a and b using isEq as the element equality predicate and returns the
// alignment between them, as described in [Diff].
//
// Unlike [Diff], a and b may have different element types, as long as isEq can compare across
// them (for example, comparing []rune against []byte).
func DiffFunc[X, Y any](a []X, b []Y, isEq func(X, Y) bool, opts ...Option) (a2b, b2a Alignment) {
	cfg := config.FromOptions(opts, config.TieBreakFlag)
	ra2b, rb2a := align.Solve(a, b, isEq, cfg)
	return Alignment(ra2b), Alignment(rb2a)
}

// Ratio returns a similarity score between a and b in the range [0, 100], using native equality.
// Identical sequences (including two empty ones) score 100; sequences with no elements in common
// score 0.
//
// The score is defined as 100 * (len(a)+len(b)-D) / (len(a)+len(b)), where D is the edit distance
// (Levenshtein distance) between a and b, with the convention that empty-vs-empty scores 100.
func Ratio[T comparable](a, b []T, opts ...Option) float64 {
	return RatioFunc(a, b, func(x, y T) bool { return x == y }, opts...)
}

// RatioFunc returns the similarity score between a and b as described in [Ratio], using isEq as
// the element equality predicate.
//
// RatioFunc never materializes an alignment: it computes only the scalar edit distance, which is
// cheaper than calling DiffFunc and deriving a ratio from its result.
func RatioFunc[X, Y any](a []X, b []Y, isEq func(X, Y) bool, opts ...Option) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	cfg := config.FromOptions(opts, config.TieBreakFlag)
	d := align.Distance(a, b, isEq, cfg)
	return 100 * float64(total-d) / float64(total)
}
