// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqdiff.Option.
package config

// TieBreak selects which of the two equally-optimal moves the engine takes when a forward or
// backward wave has no unique furthest-reaching predecessor on a diagonal.
//
// Both choices produce an alignment of the same (optimal) length; spec §9 deliberately leaves the
// choice open. PreferDeletion is the default and matches both the Rust source this package was
// ported from and every Myers implementation surveyed for this module.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=TieBreak
type TieBreak int

const (
	PreferDeletion TieBreak = iota
	PreferInsertion
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// TieBreak controls which move the snake engine takes when forward/backward waves tie.
	TieBreak TieBreak
}

// Default is the default configuration.
var Default = Config{
	TieBreak: PreferDeletion,
}

// Flag describes a single config entry. This is used to detect if options are being set that
// aren't allowed in the calling context.
type Flag int

const (
	TieBreakFlag Flag = 1 << iota
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case TieBreakFlag:
		return "seqdiff.PreferInsertionOnTie"
	default:
		panic("never reached")
	}
}
