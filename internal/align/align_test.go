package align

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tamuhey/seqdiff/internal/config"
	"github.com/tamuhey/seqdiff/internal/dpref"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string // M=matched, D=deleted (x only), I=inserted (y only)
	}{
		{"identical", []string{"foo", "bar", "baz"}, []string{"foo", "bar", "baz"}, "MMM"},
		{"empty", nil, nil, ""},
		{"x-empty", nil, []string{"foo", "bar", "baz"}, "III"},
		{"y-empty", []string{"foo", "bar", "baz"}, nil, "DDD"},
		{"ABCABBA_to_CBABAC", strings.Split("ABCABBA", ""), strings.Split("CBABAC", ""), "DIMDMMDMI"},
		{"same-prefix", []string{"foo", "bar"}, []string{"foo", "baz"}, "MDI"},
		{"same-suffix", []string{"foo", "bar"}, []string{"loo", "bar"}, "DIM"},
	}

	eq := func(a, b string) bool { return a == b }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a2b, b2a := Solve(tt.x, tt.y, eq, config.Default)
			got := render(a2b, b2a, len(tt.x), len(tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Solve(...) differs [-want,+got]:\n%s", diff)
			}
			checkConsistent(t, tt.x, tt.y, eq, a2b, b2a)
		})
	}
}

func render(a2b, b2a []int, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		switch {
		case s < n && a2b[s] == NoMatch:
			sb.WriteRune('D')
			s++
		case t < m && b2a[t] == NoMatch:
			sb.WriteRune('I')
			t++
		default:
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}

func checkConsistent[X, Y any](t *testing.T, x []X, y []Y, eq func(X, Y) bool, a2b, b2a []int) {
	t.Helper()
	if len(a2b) != len(x) || len(b2a) != len(y) {
		t.Fatalf("buffer length mismatch: len(a2b)=%d len(x)=%d len(b2a)=%d len(y)=%d", len(a2b), len(x), len(b2a), len(y))
	}
	for i, j := range a2b {
		if j == NoMatch {
			continue
		}
		if j < 0 || j >= len(y) {
			t.Fatalf("a2b[%d] = %d out of range", i, j)
		}
		if b2a[j] != i {
			t.Fatalf("a2b[%d] = %d but b2a[%d] = %d, want %d", i, j, j, b2a[j], i)
		}
		if !eq(x[i], y[j]) {
			t.Fatalf("a2b[%d] = %d but x[%d] != y[%d]", i, j, i, j)
		}
	}
	for j, i := range b2a {
		if i == NoMatch {
			continue
		}
		if i < 0 || i >= len(x) {
			t.Fatalf("b2a[%d] = %d out of range", j, i)
		}
		if a2b[i] != j {
			t.Fatalf("b2a[%d] = %d but a2b[%d] = %d, want %d", j, i, i, a2b[i], j)
		}
	}
}

func TestSolve_optimalAgainstDPOracle(t *testing.T) {
	eq := func(a, b byte) bool { return a == b }
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := randBytes(rng, rng.IntN(64))
			y := randBytes(rng, rng.IntN(64))

			a2b, b2a := Solve(x, y, eq, config.Default)
			checkConsistent(t, x, y, eq, a2b, b2a)

			matches := 0
			for _, j := range a2b {
				if j != NoMatch {
					matches++
				}
			}
			gotD := len(x) + len(y) - 2*matches

			wantD := dpref.Distance(x, y, eq)
			if gotD != wantD {
				t.Errorf("Solve distance = %d, want %d (x=%q, y=%q)", gotD, wantD, x, y)
			}
		})
	}
}

func TestDistance_matchesSolve(t *testing.T) {
	eq := func(a, b byte) bool { return a == b }
	for i := range 30 {
		seed := sha256.Sum256(fmt.Append(nil, "distance", i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randBytes(rng, rng.IntN(48))
		y := randBytes(rng, rng.IntN(48))

		a2b, _ := Solve(x, y, eq, config.Default)
		matches := 0
		for _, j := range a2b {
			if j != NoMatch {
				matches++
			}
		}
		wantD := len(x) + len(y) - 2*matches

		gotD := Distance(x, y, eq, config.Default)
		if gotD != wantD {
			t.Errorf("Distance(%q, %q) = %d, want %d", x, y, gotD, wantD)
		}
	}
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.IntN(4))
	}
	return b
}
