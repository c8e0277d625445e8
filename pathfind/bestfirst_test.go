package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/parish"
	"github.com/katalvlaran/parishroute/pathfind"
	"github.com/stretchr/testify/require"
)

func TestBestFirst_Parish(t *testing.T) {
	t.Parallel()
	g := parish.Graph()

	cases := []struct {
		name       string
		start, end geograph.NodeID
		dist       int64 // weight recorded for end at discovery
		path       []geograph.NodeID
		weight     int64 // true cost of path
		expanded   int
	}{
		// Greedy takes the direct road; Dijkstra finds 13 via St. Andrew.
		{"kingston to st thomas", parish.Kingston, parish.StThomas, 20,
			[]geograph.NodeID{0, 13}, 20, 2},
		// Greedy heads west along the south coast: 178 against the optimal 139.
		{"kingston to hanover", parish.Kingston, parish.Hanover, 26,
			[]geograph.NodeID{0, 2, 3, 4, 5, 6, 7}, 178, 7},
		{"st andrew to st thomas", parish.StAndrew, parish.StThomas, 5,
			[]geograph.NodeID{1, 13}, 5, 2},
		{"same node", parish.Kingston, parish.Kingston, 0,
			[]geograph.NodeID{0}, 0, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := pathfind.BestFirst(g, tc.start, tc.end)
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Equal(t, pathfind.AlgBestFirst, res.Algorithm)
			require.Equal(t, tc.dist, res.Distance)
			require.Equal(t, tc.path, res.Path)
			require.Equal(t, tc.expanded, res.Expanded)

			weight, err := pathfind.PathWeight(g, res.Path)
			require.NoError(t, err)
			require.Equal(t, tc.weight, weight)
		})
	}
}

func TestBestFirst_NeverBeatsDijkstra(t *testing.T) {
	t.Parallel()
	g := parish.Graph()

	worse := 0
	for s := geograph.NodeID(0); int(s) < g.Len(); s++ {
		for e := geograph.NodeID(0); int(e) < g.Len(); e++ {
			opt, err := pathfind.Dijkstra(g, s, e)
			require.NoError(t, err)
			greedy, err := pathfind.BestFirst(g, s, e)
			require.NoError(t, err)
			require.True(t, greedy.Found)

			weight, err := pathfind.PathWeight(g, greedy.Path)
			require.NoError(t, err)
			require.LessOrEqual(t, opt.Distance, weight, "%d→%d", s, e)
			if weight > opt.Distance {
				worse++
			}
		}
	}
	// The greedy strategy is visibly suboptimal on this network.
	require.Positive(t, worse)
}

func TestBestFirst_Unreachable(t *testing.T) {
	t.Parallel()
	g := withIsolated(t)

	res, err := pathfind.BestFirst(g, 0, 4)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, pathfind.Unreachable, res.Distance)
	require.Empty(t, res.Path)
	// Every node of the component was expanded before giving up.
	require.Equal(t, 4, res.Expanded)
}

func TestBestFirst_AssignsParentOnce(t *testing.T) {
	t.Parallel()
	// Node 3 is first discovered from 2 (the node closest to it), so it
	// keeps parent 2 even though 1 offers a cheaper hop.
	g := misleading(t)

	res, err := pathfind.BestFirst(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []geograph.NodeID{0, 2, 3}, res.Path)
	require.Equal(t, int64(5), res.Distance)
}
