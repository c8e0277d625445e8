// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/parishroute/geograph"

// BestFirst runs a greedy best-first search: the open set is ordered by the
// heuristic h(v) toward end alone, ignoring accumulated cost.
//
// Rules:
//   - A node receives its parent and its queue key once, when first
//     discovered, and is never re-queued.
//   - The search stops when end is popped.
//   - Distance is the weight recorded for end when it was discovered,
//     which is the weight of the final hop (0 when start == end). It is not
//     the summed path weight and may be far below it.
//
// The reported Distance is an approximation on purpose; use PathWeight on
// Result.Path for the true cost of the route found. MaxDistance is ignored.
//
// Complexity: O((V + E) log V) time, O(V) space.
func BestFirst(g *geograph.Graph, start, end geograph.NodeID, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}
	h, err := r.estimator()
	if err != nil {
		return Result{}, err
	}

	discovered := make([]bool, g.Len())
	discovered[start] = true
	pq := make(minQueue[float64], 0, g.Len())
	pq.push(start, h(start))

	var (
		found bool
		u     geograph.NodeID
		nbs   []geograph.Neighbor
	)
	for pq.Len() > 0 {
		u = pq.pop().id
		r.expanded++
		if u == end {
			found = true
			break
		}

		if nbs, err = r.neighbors(u); err != nil {
			return Result{}, err
		}
		for _, nb := range nbs {
			v := nb.To
			if discovered[v] {
				continue
			}
			discovered[v] = true
			r.parent[v] = u
			r.dist[v] = nb.Weight
			pq.push(v, h(v))
		}
	}

	return r.result(AlgBestFirst, found, r.dist[end]), nil
}
