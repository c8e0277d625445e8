// SPDX-License-Identifier: MIT

package geograph

import "slices"

// Options configures graph construction.
//
// Names         – optional stable node names, one per node, unique and non-empty.
// SpatialMinFan – minimum R-tree branching used by Nearest.
// SpatialMaxFan – maximum R-tree branching used by Nearest.
type Options struct {
	Names         []string
	SpatialMinFan int
	SpatialMaxFan int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithNames attaches human-readable names to nodes in index order.
// The slice is copied; validation happens in New.
func WithNames(names []string) Option {
	return func(o *Options) {
		o.Names = slices.Clone(names)
	}
}

// WithSpatialFanout overrides the R-tree branching factors.
// Panics if minFan < 1 or maxFan < 2*minFan-1, which rtreego cannot split.
func WithSpatialFanout(minFan, maxFan int) Option {
	if minFan < 1 || maxFan < 2*minFan-1 {
		panic("geograph: invalid spatial fanout")
	}
	return func(o *Options) {
		o.SpatialMinFan = minFan
		o.SpatialMaxFan = maxFan
	}
}

// DefaultOptions returns the construction defaults: no names and a small
// R-tree fanout suited to tens of nodes.
func DefaultOptions() Options {
	return Options{
		SpatialMinFan: 2,
		SpatialMaxFan: 8,
	}
}
