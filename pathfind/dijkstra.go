// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/parishroute/geograph"

// Dijkstra computes the minimum-weight path from start to end.
//
// The open set is a min-heap keyed by (distance, id) with lazy decrease-key:
// an improved distance pushes a new entry and stale entries are skipped
// when popped. The loop stops as soon as end is settled, which cannot change
// its distance because every later pop has a key at least as large.
//
// Returns ErrNilGraph or ErrInvalidNode before allocating any state.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *geograph.Graph, start, end geograph.NodeID, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	pq := make(minQueue[int64], 0, g.Len())
	pq.push(start, 0)

	var (
		it  *qItem[int64]
		u   geograph.NodeID
		nbs []geograph.Neighbor
	)
	for pq.Len() > 0 {
		// 1) Pop the closest open node; skip stale duplicates.
		it = pq.pop()
		u = it.id
		if r.closed[u] {
			continue
		}

		// 2) Settle it. Its distance is now final.
		r.closed[u] = true
		r.expanded++
		if u == end {
			break
		}

		// 3) Relax every unsettled neighbour.
		if nbs, err = r.neighbors(u); err != nil {
			return Result{}, err
		}
		for _, nb := range nbs {
			if r.closed[nb.To] {
				continue
			}
			nd, ok := r.extend(u, nb.Weight)
			if !ok || nd >= r.dist[nb.To] {
				continue
			}
			r.dist[nb.To] = nd
			r.parent[nb.To] = u
			pq.push(nb.To, nd)
		}
	}

	return r.result(AlgDijkstra, r.closed[end], r.dist[end]), nil
}
