// SPDX-License-Identifier: MIT

package geograph

import (
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Graph is an immutable weighted undirected graph over N geographic nodes.
// All fields are written once in New and only read afterwards.
type Graph struct {
	n       int
	weights []int64      // row-major n*n copy of the input matrix
	adj     [][]Neighbor // adjacency lists, ascending by To
	coords  []Coordinate
	names   []string          // nil when unnamed
	index   map[string]NodeID // name -> id; nil when unnamed
	spatial *rtreego.Rtree
}

// New validates and copies weights and coords into a Graph.
//
// Validation (first failure wins, see validators.go):
//  1. weights non-empty and square.
//  2. len(coords) == N and every coordinate finite.
//  3. zero diagonal, no negative weights, symmetric.
//  4. names (if given) of length N, non-empty and unique.
//
// Every returned error satisfies errors.Is(err, ErrInvalidGraph).
// Complexity: O(N^2) time and space.
func New(weights [][]int64, coords []Coordinate, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateSquare(weights); err != nil {
		return nil, err
	}
	n := len(weights)
	if err := validateCoords(coords, n); err != nil {
		return nil, err
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	if err := validateNames(cfg.Names, n); err != nil {
		return nil, err
	}

	g := &Graph{
		n:       n,
		weights: make([]int64, n*n),
		adj:     make([][]Neighbor, n),
		coords:  slices.Clone(coords),
	}
	for u := 0; u < n; u++ {
		copy(g.weights[u*n:(u+1)*n], weights[u])
		for v := 0; v < n; v++ {
			if w := weights[u][v]; w != 0 {
				g.adj[u] = append(g.adj[u], Neighbor{To: NodeID(v), Weight: w})
			}
		}
	}
	if cfg.Names != nil {
		g.names = cfg.Names
		g.index = make(map[string]NodeID, n)
		for i, name := range g.names {
			g.index[name] = NodeID(i)
		}
	}
	g.spatial = buildSpatialIndex(g.coords, cfg.SpatialMinFan, cfg.SpatialMaxFan)

	return g, nil
}

// FromNamed builds a Graph from a name→coordinate mapping and a weight
// matrix whose row/column order follows names. Every name must be present
// in coords.
func FromNamed(names []string, coords map[string]Coordinate, weights [][]int64, opts ...Option) (*Graph, error) {
	ordered := make([]Coordinate, len(names))
	for i, name := range names {
		c, ok := coords[name]
		if !ok {
			return nil, invalidGraphf(ErrCoordinateCount, "no coordinate for %q", name)
		}
		ordered[i] = c
	}
	opts = append(opts, WithNames(names))

	return New(weights, ordered, opts...)
}

// Len returns the node count N.
func (g *Graph) Len() int { return g.n }

// Valid reports whether u is in [0, N).
func (g *Graph) Valid(u NodeID) bool { return u >= 0 && int(u) < g.n }

// Weight returns the edge weight between u and v; 0 means no direct edge.
func (g *Graph) Weight(u, v NodeID) (int64, error) {
	if !g.Valid(u) {
		return 0, invalidNode("Weight", u)
	}
	if !g.Valid(v) {
		return 0, invalidNode("Weight", v)
	}

	return g.weights[int(u)*g.n+int(v)], nil
}

// HasEdge reports whether u and v are directly connected.
// Invalid ids are never connected.
func (g *Graph) HasEdge(u, v NodeID) bool {
	w, err := g.Weight(u, v)
	return err == nil && w != 0
}

// Neighbors returns the edges leaving u in ascending id order.
// The slice is a copy and may be modified by the caller.
func (g *Graph) Neighbors(u NodeID) ([]Neighbor, error) {
	if !g.Valid(u) {
		return nil, invalidNode("Neighbors", u)
	}

	return slices.Clone(g.adj[u]), nil
}

// Edges returns every undirected edge once (U < V), ordered by (U, V).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		for _, nb := range g.adj[u] {
			if int(nb.To) > u {
				out = append(out, Edge{U: NodeID(u), V: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// Coordinate returns the latitude/longitude of u.
func (g *Graph) Coordinate(u NodeID) (Coordinate, error) {
	if !g.Valid(u) {
		return Coordinate{}, invalidNode("Coordinate", u)
	}

	return g.coords[u], nil
}

// Point returns the coordinate of u as an orb.Point (lon, lat).
func (g *Graph) Point(u NodeID) (orb.Point, error) {
	c, err := g.Coordinate(u)
	if err != nil {
		return orb.Point{}, err
	}

	return c.Point(), nil
}

// Name returns the name of u, or its decimal id when the graph is unnamed.
func (g *Graph) Name(u NodeID) (string, error) {
	if !g.Valid(u) {
		return "", invalidNode("Name", u)
	}
	if g.names == nil {
		return fmt.Sprintf("%d", u), nil
	}

	return g.names[u], nil
}

// Names returns a copy of the node names, or nil for an unnamed graph.
func (g *Graph) Names() []string { return slices.Clone(g.names) }

// Index resolves a node name to its id.
func (g *Graph) Index(name string) (NodeID, error) {
	if id, ok := g.index[name]; ok {
		return id, nil
	}

	return NoNode, fmt.Errorf("geograph: Index: name %q: %w", name, ErrInvalidNode)
}
