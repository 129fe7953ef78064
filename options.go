// SPDX-License-Identifier: MIT

// Package tsplib: parse-time configuration.
//
// Options follow the plain-struct-plus-functional-overrides pattern:
// DefaultOptions() gives the lenient, specification-faithful behavior and
// With* constructors opt in to stricter checking.

package tsplib

// Options configures a single parse invocation.
//
// StrictNodes — when true, building a coordinate-based instance verifies
// that every node identifier in 1..DIMENSION has a stored coordinate, so a
// later Weight lookup can never silently hit an absent node. The default is
// the classical lenient behavior: absent identifiers are a caller-side edge
// case and Weight returns 0 for them (WeightStrict reports them either way).
type Options struct {
	StrictNodes bool
}

// Option is a functional override applied on top of DefaultOptions.
type Option func(*Options)

// WithStrictNodes enables the strict node-coverage check described on
// Options.StrictNodes.
func WithStrictNodes() Option {
	return func(o *Options) {
		o.StrictNodes = true
	}
}

// DefaultOptions returns the lenient defaults:
//   - StrictNodes: false (unknown-node weight lookups yield 0).
func DefaultOptions() Options {
	return Options{
		StrictNodes: false,
	}
}

// gatherOptions folds functional overrides into the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
