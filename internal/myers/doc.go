// Package myers implements the bidirectional "middle snake" search at the core of Myers' O((N+M)D)
// diff algorithm.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that the inputs are x = "ABCABBA" and y = "CBABAC". Then we can
// represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex corresponds to a state; the top left (0,0) corresponds to x and the bottom right
// (7,6) to y. A step to the right deletes an element of x, a step down inserts an element of y,
// and a diagonal step matches one element of each, when the elements are equal. The idea behind
// Myers' algorithm is to find an optimal diff (fewest insertions and deletions) by finding a
// minimum-cost path from the top left to the bottom right, where horizontal and vertical edges
// cost 1 and diagonal edges cost 0.
//
// Myers found a greedy algorithm with O((N+M)D) time complexity and O(D) working memory per wave
// (N = len(x), M = len(y)). We use s and t for the horizontal and vertical coordinates and k for
// diagonals, where diagonal k is the set of cells with s-t == k.
//
// Let a D-path be a path with exactly D non-diagonal edges. A D-path is furthest reaching on
// diagonal k if it is one of the D-paths ending on k whose endpoint has the greatest s+t of all
// such paths. A furthest-reaching D-path on diagonal k is, without loss of generality, either a
// furthest-reaching (D-1)-path on diagonal k-1 followed by a horizontal edge, or a
// furthest-reaching (D-1)-path on diagonal k+1 followed by a vertical edge — in both cases
// followed by the longest possible run of diagonal edges.
//
// A naive implementation that only runs the forward search requires O(N*M) memory to reconstruct
// a path, because it has to remember a predecessor for every visited cell. [Engine.FindMiddleSnake]
// instead runs a forward wave from (0,0) and a backward wave from (N,M) at the same time. There is
// a D-path from (0,0) to (N,M) if and only if there is a ⌈D/2⌉-path from (0,0) to some (s,t) and a
// ⌊D/2⌋-path from some (s',t') to (N,M) with s-t == s'-t' — i.e. the two waves are guaranteed to
// meet on some diagonal after O(D) steps. The run of diagonal edges where they meet is the "middle
// snake"; it splits the problem into two independent, strictly smaller sub-rectangles that package
// align recurses into. Only the two frontier arrays Vf, Vb (O(N+M) total) are needed regardless of
// recursion depth, which bounds total memory at O(N+M) for full alignment reconstruction.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Esko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
