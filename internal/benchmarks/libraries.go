// Package benchmarks compares this module's alignment algorithm against a handful of other Go
// diff implementations, using the number of changed lines each one reports for the same inputs as
// the common currency (none of these libraries share an output format, so "unified diff text" or
// "edit script" can't be compared directly across all of them, but a changed-line count can).
package benchmarks

import (
	"bytes"
	"context"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"

	"github.com/tamuhey/seqdiff"
)

// Impl is one diff implementation under comparison.
type Impl struct {
	Name string
	// ChangedLines returns the number of lines that differ between x and y, split on "\n".
	ChangedLines func(x, y []byte) int
}

var Impls = []Impl{
	{
		Name: "seqdiff",
		ChangedLines: func(x, y []byte) int {
			xlines := bytes.Split(x, []byte("\n"))
			ylines := bytes.Split(y, []byte("\n"))
			a2b, b2a := seqdiff.DiffFunc(xlines, ylines, func(a, b []byte) bool { return bytes.Equal(a, b) })
			changed := 0
			for _, j := range a2b {
				if j == seqdiff.NoMatch {
					changed++
				}
			}
			for _, i := range b2a {
				if i == seqdiff.NoMatch {
					changed++
				}
			}
			return changed
		},
	},
	{
		Name: "go-internal",
		ChangedLines: func(x, y []byte) int {
			out := gointernal.Diff("x", x, "y", y)
			return countPrefixedLines(out)
		},
	},
	{
		Name: "diffmatchpatch",
		ChangedLines: func(x, y []byte) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			changed := 0
			for _, d := range diffs {
				if d.Type == diffmatchpatch.DiffEqual {
					continue
				}
				changed += strings.Count(d.Text, "\n")
				if !strings.HasSuffix(d.Text, "\n") && d.Text != "" {
					changed++
				}
			}
			return changed
		},
	},
	{
		Name: "godebug",
		ChangedLines: func(x, y []byte) int {
			out := []byte(godebug.Diff(string(x), string(y)))
			return countPrefixedLines(out)
		},
	},
	{
		Name: "mb0",
		ChangedLines: func(x, y []byte) int {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			changed := 0
			for _, ch := range changes {
				changed += ch.Del + ch.Ins
			}
			return changed
		},
	},
	{
		Name: "udiff",
		ChangedLines: func(x, y []byte) int {
			out := []byte(udiff.Unified("x", "y", string(x), string(y)))
			return countPrefixedLines(out)
		},
	},
}

// CompareAll runs every Impl's ChangedLines against x and y concurrently and returns a map from
// implementation name to its result. This is the cross-implementation comparison harness itself
// (not the timed benchmark loop in benchmark_test.go): each Impl is an independent, allocation-heavy
// black box, so running them concurrently shortens wall-clock time for a large corpus without any
// of them sharing state.
func CompareAll(ctx context.Context, x, y []byte) (map[string]int, error) {
	results := make([]int, len(Impls))
	g, _ := errgroup.WithContext(ctx)
	for i, impl := range Impls {
		g.Go(func() error {
			results[i] = impl.ChangedLines(x, y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(Impls))
	for i, impl := range Impls {
		out[impl.Name] = results[i]
	}
	return out, nil
}

func countPrefixedLines(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
