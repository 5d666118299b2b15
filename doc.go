// Package seqdiff computes an optimal alignment between two generic sequences and the similarity
// ratio between them, using a linear-space variant of Myers' diff algorithm.
//
// The main functions are [Diff] and [DiffFunc], which return the index alignment between the two
// inputs as a pair of [Alignment] values, and [Ratio] and [RatioFunc], which return a similarity
// score in [0, 100] without materializing an alignment.
//
// [Diff] and [Ratio] work on any comparable element type using native equality; [DiffFunc] and
// [RatioFunc] take an explicit equality predicate and so work across two different element types
// (for example, comparing []rune against []byte).
//
// Every comparison in this package finds an exact optimal alignment (no heuristics, no early
// termination for large or highly dissimilar inputs): time complexity is O((N+M)D) and space is
// O(N+M), where N = len(a), M = len(b), and D is the edit distance between them.
package seqdiff
