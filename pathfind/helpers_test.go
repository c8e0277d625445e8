package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/stretchr/testify/require"
)

// withIsolated returns a 5-node graph: a 4-cycle 0-1-3-2-0 and node 4
// with no edges at all.
//
//	0 ─3─ 1
//	│     │
//	5     1      4
//	│     │
//	2 ─2─ 3
func withIsolated(t *testing.T) *geograph.Graph {
	t.Helper()
	g, err := geograph.New(
		[][]int64{
			{0, 3, 5, 0, 0},
			{3, 0, 0, 1, 0},
			{5, 0, 0, 2, 0},
			{0, 1, 2, 0, 0},
			{0, 0, 0, 0, 0},
		},
		[]geograph.Coordinate{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 1},
			{Lat: 1, Lon: 0},
			{Lat: 1, Lon: 1},
			{Lat: 5, Lon: 5},
		},
	)
	require.NoError(t, err)

	return g
}

// misleading returns a graph where a strongly inflated heuristic lures A*
// onto the expensive branch:
//
//	start 0 ─1─ 1 ─1─ 3 end     (cheap, but 1 sits far from 3)
//	      └─1─ 2 ─5─┘           (costly, but 2 sits next to 3)
func misleading(t *testing.T) *geograph.Graph {
	t.Helper()
	g, err := geograph.New(
		[][]int64{
			{0, 1, 1, 0},
			{1, 0, 0, 1},
			{1, 0, 0, 5},
			{0, 1, 5, 0},
		},
		[]geograph.Coordinate{
			{Lat: 0, Lon: 0.5},
			{Lat: 0, Lon: 1},
			{Lat: 0, Lon: 0.01},
			{Lat: 0, Lon: 0},
		},
	)
	require.NoError(t, err)

	return g
}

// randomGraph builds a reproducible undirected graph with n nodes, edge
// probability p and weights in [1, maxW].
func randomGraph(t *testing.T, seed int64, n int, p float64, maxW int64) *geograph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
	}
	c := make([]geograph.Coordinate, n)
	for i := 0; i < n; i++ {
		c[i] = geograph.Coordinate{Lat: r.Float64(), Lon: r.Float64()}
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				wt := 1 + r.Int63n(maxW)
				w[i][j], w[j][i] = wt, wt
			}
		}
	}
	g, err := geograph.New(w, c)
	require.NoError(t, err)

	return g
}
