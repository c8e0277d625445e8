// SPDX-License-Identifier: MIT
// Package geograph provides an immutable, weighted, undirected graph of
// geographic regions: a dense N×N edge-weight matrix plus one
// latitude/longitude coordinate per node.
//
// Model:
//
//   - Nodes are dense integer ids in [0, N). NoNode (-1) marks "no node".
//   - Weights are non-negative int64 values; 0 means "no direct edge".
//   - The matrix is square and symmetric with a zero diagonal.
//   - Coordinates drive heuristic estimates and nearest-node lookup only;
//     they never contribute to edge weights.
//
// Construction:
//
//	g, err := geograph.New(weights, coords, geograph.WithNames(names))
//	if err != nil {
//	    // errors.Is(err, geograph.ErrInvalidGraph) is always true here;
//	    // the wrapped cause (ErrNonSquare, ErrAsymmetry, ...) tells why.
//	}
//
// FromNamed builds the same graph from a name→coordinate mapping and a matrix
// ordered like the name slice, which is the shape most map datasets arrive in.
//
// Guarantees:
//
//   - Inputs are copied; no method mutates the graph after New returns.
//   - Neighbors and Edges iterate in ascending id order (deterministic).
//   - A *Graph may be shared by any number of goroutines without locking.
//
// Nearest resolves an arbitrary coordinate to the closest node through an
// R-tree (github.com/dhconnelly/rtreego) built once during construction.
package geograph
