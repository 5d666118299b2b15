//go:build experimental

package seqdiff

import "github.com/tamuhey/seqdiff/internal/config"

// PreferInsertionOnTie changes how Diff/DiffFunc/Ratio/RatioFunc break ties between equally
// optimal alignments: by default, when a deletion and an insertion are equally good at a given
// point, this package prefers the deletion (matching both the original Rust implementation this
// package was ported from and every other Myers implementation surveyed while building it). This
// option flips that preference to insertion.
//
// It's experimental because the tie-break choice is unspecified by the underlying algorithm and
// this option exists mainly so callers that need a specific tie-break for test reproducibility
// have a documented way to get it.
func PreferInsertionOnTie() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TieBreak = config.PreferInsertion
		return config.TieBreakFlag
	}
}
