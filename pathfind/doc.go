// SPDX-License-Identifier: MIT
// Package pathfind computes a path between two nodes of a geograph.Graph
// with one of three interchangeable strategies sharing a single result shape.
//
// Strategies:
//
//   - Dijkstra  – uniform-cost, label-setting. Always optimal because every
//     weight is non-negative by construction of the graph.
//   - AStar     – Dijkstra ordered by g+h. Optimal only when the heuristic
//     is admissible for the weight matrix in use.
//   - BestFirst – greedy on h alone. Fast, not optimal, and reports an
//     approximate Distance (see BestFirst for the exact rule).
//
// Shared contract:
//
//   - start and end must lie in [0, N); otherwise ErrInvalidNode is returned
//     before any search state exists.
//   - An unreachable end yields Found=false, Distance=Unreachable and an
//     empty Path. This is a normal result, not an error.
//   - The open set is a binary heap ordered by (key, node id), so equal keys
//     pop in ascending id order and every run is reproducible.
//   - Each call owns its distance, parent and closed slices. Calls never
//     share state, and the graph is read-only, so independent searches over
//     one graph may run from different goroutines without locking.
//
// Options:
//
//	WithHeuristic(f)     – estimator for AStar and BestFirst (default heuristic.Euclidean).
//	WithMaxDistance(d)   – Dijkstra and AStar stop relaxing past cumulative cost d.
//
// Example:
//
//	res, err := pathfind.Search(pathfind.AlgAStar, g, 0, 7)
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
//	fmt.Println(res.Distance, res)
package pathfind
