// SPDX-License-Identifier: MIT

package pathfind

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/heuristic"
)

// Unreachable is the Distance reported when no path exists.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the search operations.
var (
	// ErrNilGraph indicates that a nil *geograph.Graph was passed in.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrInvalidNode indicates a start or end outside [0, N). It is the same
	// sentinel as geograph.ErrInvalidNode so either name matches.
	ErrInvalidNode = geograph.ErrInvalidNode

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the supported set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrBadMaxDistance indicates a negative distance cap.
	ErrBadMaxDistance = errors.New("pathfind: MaxDistance must be non-negative")

	// ErrBrokenPath indicates consecutive path nodes without a direct edge.
	ErrBrokenPath = errors.New("pathfind: consecutive nodes are not adjacent")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AlgDijkstra is uniform-cost search; always optimal on non-negative weights.
	AlgDijkstra Algorithm = iota
	// AlgAStar orders by g+h; optimal when the heuristic is admissible.
	AlgAStar
	// AlgBestFirst orders by h alone; fast and greedy, not optimal.
	AlgBestFirst
)

var algorithmNames = [...]string{
	AlgDijkstra:  "dijkstra",
	AlgAStar:     "astar",
	AlgBestFirst: "bestfirst",
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every supported strategy in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgDijkstra, AlgBestFirst, AlgAStar}
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case, and
// "a*", "best-first" and "ucs" are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra", "ucs":
		return AlgDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgAStar, nil
	case "bestfirst", "best-first", "best_first":
		return AlgBestFirst, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one search call.
//
// Distance – summed edge weights for Dijkstra and A*; for BestFirst, the
// weight recorded for the end node at discovery (see BestFirst).
// Unreachable when Found is false.
// Path     – start..end inclusive; empty when Found is false.
// Expanded – number of nodes popped from the open set and expanded.
type Result struct {
	Algorithm Algorithm
	Distance  int64
	Path      []geograph.NodeID
	Found     bool
	Expanded  int
}

// String renders the path as "0 -> 1 -> 13", or "no path".
func (r Result) String() string {
	if !r.Found {
		return "no path"
	}
	parts := make([]string, len(r.Path))
	for i, u := range r.Path {
		parts[i] = fmt.Sprintf("%d", u)
	}

	return strings.Join(parts, " -> ")
}

// Describe renders the path using node names from g.
func (r Result) Describe(g *geograph.Graph) string {
	if !r.Found {
		return "no path"
	}
	parts := make([]string, len(r.Path))
	for i, u := range r.Path {
		name, err := g.Name(u)
		if err != nil {
			name = fmt.Sprintf("%d", u)
		}
		parts[i] = name
	}

	return strings.Join(parts, " -> ")
}

// Options configures a search.
//
// Heuristic   – remaining-distance estimate for A* and BestFirst.
// MaxDistance – Dijkstra and A* do not relax edges past this cumulative cost.
type Options struct {
	Heuristic   heuristic.Func
	MaxDistance int64
}

// Option represents a functional option for the search operations.
type Option func(*Options)

// WithHeuristic overrides the estimator used by A* and BestFirst.
// A nil f restores the default.
func WithHeuristic(f heuristic.Func) Option {
	return func(o *Options) {
		if f == nil {
			f = heuristic.Euclidean
		}
		o.Heuristic = f
	}
}

// WithMaxDistance caps the explored cumulative distance.
// Panics on a negative cap.
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// DefaultOptions returns Euclidean guidance and no distance cap.
func DefaultOptions() Options {
	return Options{
		Heuristic:   heuristic.Euclidean,
		MaxDistance: math.MaxInt64,
	}
}
