// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/parishroute/geograph"

// AStar searches from start to end ordering the open set by g(v) + h(v),
// where g is the cumulative edge weight and h the configured heuristic
// (Euclidean by default) from v's coordinate to end's coordinate.
//
// Rules:
//   - Popping end terminates immediately; its g is the reported Distance.
//   - A strictly better g for an open node re-keys it in place (heap.Fix).
//   - A strictly better g for an undiscovered node opens it.
//   - Closed nodes are never reopened.
//
// The result equals Dijkstra's distance whenever h never overestimates the
// remaining weight (admissible). Raw coordinate distances are not proven
// admissible for arbitrary matrices, so treat optimality as conditional.
//
// Complexity: O((V + E) log V) time, O(V) space.
func AStar(g *geograph.Graph, start, end geograph.NodeID, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}
	h, err := r.estimator()
	if err != nil {
		return Result{}, err
	}

	open := make([]*qItem[float64], g.Len()) // live heap handle per node
	pq := make(minQueue[float64], 0, g.Len())
	open[start] = pq.push(start, h(start))

	var (
		found bool
		u     geograph.NodeID
		nbs   []geograph.Neighbor
	)
	for pq.Len() > 0 {
		u = pq.pop().id
		open[u] = nil
		r.expanded++
		if u == end {
			found = true
			break
		}
		r.closed[u] = true

		if nbs, err = r.neighbors(u); err != nil {
			return Result{}, err
		}
		for _, nb := range nbs {
			v := nb.To
			if r.closed[v] {
				continue
			}
			ng, ok := r.extend(u, nb.Weight)
			if !ok || ng >= r.dist[v] {
				continue
			}
			r.dist[v] = ng
			r.parent[v] = u
			key := float64(ng) + h(v)
			if open[v] != nil {
				pq.decrease(open[v], key)
			} else {
				open[v] = pq.push(v, key)
			}
		}
	}

	return r.result(AlgAStar, found, r.dist[end]), nil
}
