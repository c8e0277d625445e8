// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/parishroute/geograph"
)

// ReconstructPath follows parent links back from end until a NoNode parent
// and returns the nodes in start→end order.
//
// The result is empty when end is unreachable (no parent and end != start),
// when the chain does not terminate at start, or when it is longer than
// len(parent), which only a corrupted parent slice can produce.
func ReconstructPath(parent []geograph.NodeID, start, end geograph.NodeID) []geograph.NodeID {
	n := len(parent)
	if start < 0 || end < 0 || int(start) >= n || int(end) >= n {
		return []geograph.NodeID{}
	}
	if end != start && parent[end] == geograph.NoNode {
		return []geograph.NodeID{}
	}

	path := make([]geograph.NodeID, 0, 8)
	for v := end; v != geograph.NoNode; v = parent[v] {
		if len(path) == n || int(v) >= n || v < 0 {
			return []geograph.NodeID{}
		}
		path = append(path, v)
	}
	if path[len(path)-1] != start {
		return []geograph.NodeID{}
	}
	slices.Reverse(path)

	return path
}

// PathWeight sums the edge weights along path. Paths of zero or one node
// weigh 0. It reports ErrBrokenPath when two consecutive nodes share no edge.
func PathWeight(g *geograph.Graph, path []geograph.NodeID) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, err := g.Weight(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("pathfind: PathWeight hop %d: %w", i, err)
		}
		if w == 0 {
			return 0, fmt.Errorf("%w: %d -> %d", ErrBrokenPath, path[i], path[i+1])
		}
		if w > math.MaxInt64-total {
			return 0, fmt.Errorf("pathfind: PathWeight overflow at hop %d", i)
		}
		total += w
	}
	if len(path) == 1 && !g.Valid(path[0]) {
		return 0, fmt.Errorf("pathfind: PathWeight: node %d: %w", path[0], ErrInvalidNode)
	}

	return total, nil
}
