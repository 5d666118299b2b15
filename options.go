package seqdiff

import "github.com/tamuhey/seqdiff/internal/config"

// Option configures the behavior of comparison functions in this package.
type Option = config.Option
