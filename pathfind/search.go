// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/paulmach/orb"
)

// Search runs the strategy selected by alg. It is the single entry point a
// caller needs when the algorithm is chosen at runtime.
func Search(alg Algorithm, g *geograph.Graph, start, end geograph.NodeID, opts ...Option) (Result, error) {
	switch alg {
	case AlgDijkstra:
		return Dijkstra(g, start, end, opts...)
	case AlgAStar:
		return AStar(g, start, end, opts...)
	case AlgBestFirst:
		return BestFirst(g, start, end, opts...)
	}

	return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// runner holds the mutable state of exactly one search call.
// Nothing in it outlives the call or is shared between calls.
type runner struct {
	g        *geograph.Graph
	options  Options
	start    geograph.NodeID
	end      geograph.NodeID
	dist     []int64           // best-known cumulative distance
	closed   []bool            // settled / expanded
	parent   []geograph.NodeID // NoNode until discovered
	expanded int
}

// newRunner validates inputs and allocates fresh per-call state.
//
// Validation order:
//  1. g non-nil (ErrNilGraph).
//  2. start valid (ErrInvalidNode).
//  3. end valid (ErrInvalidNode).
func newRunner(g *geograph.Graph, start, end geograph.NodeID, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("pathfind: start %d not in [0, %d): %w", start, g.Len(), ErrInvalidNode)
	}
	if !g.Valid(end) {
		return nil, fmt.Errorf("pathfind: end %d not in [0, %d): %w", end, g.Len(), ErrInvalidNode)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make([]int64, n),
		closed:  make([]bool, n),
		parent:  make([]geograph.NodeID, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = Unreachable
		r.parent[i] = geograph.NoNode
	}
	r.dist[start] = 0

	return r, nil
}

// neighbors wraps the graph lookup with search context.
func (r *runner) neighbors(u geograph.NodeID) ([]geograph.Neighbor, error) {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return nil, fmt.Errorf("pathfind: failed to get neighbors of %d: %w", u, err)
	}

	return nbs, nil
}

// extend returns dist[u]+w and whether it is within MaxDistance without overflow.
func (r *runner) extend(u geograph.NodeID, w int64) (int64, bool) {
	du := r.dist[u]
	if du == Unreachable || w > math.MaxInt64-du {
		return 0, false
	}
	nd := du + w

	return nd, nd <= r.options.MaxDistance
}

// estimator precomputes node points and returns h(v) toward the end node.
func (r *runner) estimator() (func(v geograph.NodeID) float64, error) {
	n := r.g.Len()
	pts := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		p, err := r.g.Point(geograph.NodeID(i))
		if err != nil {
			return nil, fmt.Errorf("pathfind: coordinate of %d: %w", i, err)
		}
		pts[i] = p
	}
	goal := pts[r.end]
	h := r.options.Heuristic

	return func(v geograph.NodeID) float64 { return h(pts[v], goal) }, nil
}

// result packages the final state; found decides between a real answer
// and the unreachable shape.
func (r *runner) result(alg Algorithm, found bool, distance int64) Result {
	res := Result{Algorithm: alg, Expanded: r.expanded}
	if !found {
		res.Distance = Unreachable
		res.Path = []geograph.NodeID{}
		return res
	}
	res.Path = ReconstructPath(r.parent, r.start, r.end)
	res.Found = len(res.Path) > 0
	if !res.Found {
		res.Distance = Unreachable
		return res
	}
	res.Distance = distance

	return res
}
