// Package parishroute finds routes across a small, fixed map of geographic
// regions and contrasts three classic search strategies on it.
//
// What is inside:
//
//	geograph/           immutable weighted graph: edge matrix, coordinates, names, nearest-node lookup
//	heuristic/          straight-line estimators (planar, haversine, scaled, zero)
//	pathfind/           Dijkstra, A* and greedy best-first with one shared Result shape
//	parish/             the fourteen-parish road network of Jamaica, ready to search
//	cmd/parishroute/    command-line caller with timing and side-by-side comparison
//
// Quick example:
//
//	g := parish.Graph()
//	res, err := pathfind.Search(pathfind.AlgAStar, g, parish.Kingston, parish.Hanover)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distance, res.Describe(g))
//
// Dijkstra is always optimal here (weights are non-negative). A* is optimal
// when its heuristic never overestimates. Best-first is greedy and reports an
// approximate distance on purpose, so the three can be compared side by side.
package parishroute
