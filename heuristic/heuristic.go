// SPDX-License-Identifier: MIT
// Package heuristic provides remaining-distance estimators over node
// coordinates for informed searches (A*, greedy best-first).
//
// Every estimator takes two orb.Points in (lon, lat) order. None of them is
// guaranteed admissible for an arbitrary weight matrix: a straight-line
// estimate is only a lower bound when the weights are expressed in the same
// unit as the estimate and every road is at least as long as the chord.
package heuristic

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Func estimates the remaining cost from a to b. It must be non-negative.
type Func func(a, b orb.Point) float64

// Euclidean is the straight-line distance in raw coordinate degrees.
func Euclidean(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Haversine is the great-circle distance in metres.
func Haversine(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b)
}

// Zero ignores its arguments. A* driven by Zero expands like Dijkstra.
func Zero(_, _ orb.Point) float64 { return 0 }

// Scaled multiplies the estimate of f by k, e.g. Scaled(Haversine, 0.001)
// yields kilometres. Panics if k is negative or f is nil.
func Scaled(f Func, k float64) Func {
	if f == nil {
		panic("heuristic: Scaled with nil Func")
	}
	if k < 0 {
		panic("heuristic: negative scale")
	}

	return func(a, b orb.Point) float64 { return k * f(a, b) }
}
