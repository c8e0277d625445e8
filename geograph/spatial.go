// SPDX-License-Identifier: MIT

package geograph

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
)

// pointTol is the side length of the degenerate rectangle stored per node.
const pointTol = 1e-9

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	id   NodeID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.bbox }

// buildSpatialIndex inserts one point entry per node, keyed (lon, lat).
func buildSpatialIndex(coords []Coordinate, minFan, maxFan int) *rtreego.Rtree {
	tree := rtreego.NewTree(2, minFan, maxFan)
	for i, c := range coords {
		tree.Insert(&nodeEntry{
			id:   NodeID(i),
			bbox: rtreego.Point{c.Lon, c.Lat}.ToRect(pointTol),
		})
	}

	return tree
}

// Nearest returns the node whose coordinate is closest to c in planar
// (lon, lat) space. Ties resolve to the lower id.
func (g *Graph) Nearest(c Coordinate) (NodeID, error) {
	if !c.finite() {
		return NoNode, fmt.Errorf("geograph: Nearest: %w", ErrBadCoordinate)
	}

	// The R-tree may return equidistant candidates in any order; ask for a
	// few and settle ties by id so the answer is stable.
	k := 4
	if g.n < k {
		k = g.n
	}
	hits := g.spatial.NearestNeighbors(k, rtreego.Point{c.Lon, c.Lat})
	best, bestD := NoNode, math.Inf(1)
	for _, h := range hits {
		e, ok := h.(*nodeEntry)
		if !ok || e == nil {
			continue
		}
		nc := g.coords[e.id]
		d := math.Hypot(nc.Lon-c.Lon, nc.Lat-c.Lat)
		if d < bestD || (d == bestD && e.id < best) {
			best, bestD = e.id, d
		}
	}
	if best == NoNode {
		return NoNode, fmt.Errorf("geograph: Nearest: %w", ErrInvalidNode)
	}

	return best, nil
}
