package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/parish"
	"github.com/katalvlaran/parishroute/pathfind"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: errors come back before any search work.
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	t.Parallel()
	g := parish.Graph()

	for _, alg := range pathfind.Algorithms() {
		alg := alg
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()
			_, err := pathfind.Search(alg, nil, 0, 1)
			require.ErrorIs(t, err, pathfind.ErrNilGraph)

			for _, pair := range [][2]geograph.NodeID{{-1, 0}, {0, -1}, {14, 0}, {0, 14}, {geograph.NoNode, 99}} {
				res, err := pathfind.Search(alg, g, pair[0], pair[1])
				require.ErrorIs(t, err, pathfind.ErrInvalidNode, "pair %v", pair)
				require.ErrorIs(t, err, geograph.ErrInvalidNode)
				require.Equal(t, pathfind.Result{}, res)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Parish network scenarios.
// ------------------------------------------------------------------------

func TestDijkstra_Parish(t *testing.T) {
	t.Parallel()
	g := parish.Graph()

	cases := []struct {
		name       string
		start, end geograph.NodeID
		dist       int64
		path       []geograph.NodeID
	}{
		// The direct Kingston–St. Thomas road (20) loses to the detour via St. Andrew (8+5).
		{"kingston to st thomas", parish.Kingston, parish.StThomas, 13,
			[]geograph.NodeID{0, 1, 13}},
		{"kingston to hanover", parish.Kingston, parish.Hanover, 139,
			[]geograph.NodeID{0, 1, 13, 12, 11, 10, 9, 8, 7}},
		{"direct edge with no shortcut", parish.StAndrew, parish.StThomas, 5,
			[]geograph.NodeID{1, 13}},
		{"st elizabeth to portland", parish.StElizabeth, parish.Portland, 149,
			[]geograph.NodeID{5, 4, 3, 2, 1, 13, 12}},
		{"same node", parish.Trelawny, parish.Trelawny, 0,
			[]geograph.NodeID{9}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := pathfind.Dijkstra(g, tc.start, tc.end)
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Equal(t, tc.dist, res.Distance)
			require.Equal(t, tc.path, res.Path)
			require.Equal(t, pathfind.AlgDijkstra, res.Algorithm)
		})
	}
}

func TestDijkstra_SameNodeExpandsOnce(t *testing.T) {
	t.Parallel()
	res, err := pathfind.Dijkstra(parish.Graph(), parish.Kingston, parish.Kingston)
	require.NoError(t, err)
	require.Equal(t, 1, res.Expanded)
	require.Equal(t, "0", res.String())
}

// ------------------------------------------------------------------------
// 3. Unreachable targets and distance caps.
// ------------------------------------------------------------------------

func TestDijkstra_Unreachable(t *testing.T) {
	t.Parallel()
	g := withIsolated(t)

	for _, pair := range [][2]geograph.NodeID{{0, 4}, {4, 0}, {3, 4}} {
		res, err := pathfind.Dijkstra(g, pair[0], pair[1])
		require.NoError(t, err)
		require.False(t, res.Found)
		require.Equal(t, pathfind.Unreachable, res.Distance)
		require.Empty(t, res.Path)
		require.Equal(t, "no path", res.String())
	}

	// The isolated node still reaches itself.
	res, err := pathfind.Dijkstra(g, 4, 4)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []geograph.NodeID{4}, res.Path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	t.Parallel()
	g := withIsolated(t)

	// 0→3 costs 4 via node 1.
	res, err := pathfind.Dijkstra(g, 0, 3, pathfind.WithMaxDistance(4))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, int64(4), res.Distance)

	res, err = pathfind.Dijkstra(g, 0, 3, pathfind.WithMaxDistance(3))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, pathfind.Unreachable, res.Distance)

	require.Panics(t, func() { pathfind.WithMaxDistance(-1) })
}
