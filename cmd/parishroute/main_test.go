package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/pathfind"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRoute_Dijkstra(t *testing.T) {
	out, err := execute(t, "route", "--from", "Kingston", "--to", "St. Thomas")
	require.NoError(t, err)
	require.Contains(t, out, "Dijkstra's Algorithm selected\n")
	require.Contains(t, out, "From: Kingston\nTo: St. Thomas\n")
	require.Contains(t, out, "Distance: 13\n")
	require.Contains(t, out, "Path: Kingston -> St. Andrew -> St. Thomas\n")
	require.Contains(t, out, "Time: ")
	require.NotContains(t, out, "Route weight")
}

func TestRoute_BestFirstShowsRouteWeight(t *testing.T) {
	out, err := execute(t, "route", "--from", "kingston", "--to", "HANOVER", "-a", "best-first")
	require.NoError(t, err)
	require.Contains(t, out, "Best-First Search Algorithm selected\n")
	require.Contains(t, out, "Distance: 26\n")
	require.Contains(t, out, "Route weight: 178\n")
}

func TestRoute_All(t *testing.T) {
	out, err := execute(t, "route", "--from", "Kingston", "--to", "Hanover", "--all", "--heuristic", "haversine-km")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, " selected\n"))
	require.Contains(t, out, "A* Search Algorithm selected")
	require.Equal(t, 1, strings.Count(out, "Route weight"))
}

func TestRoute_Errors(t *testing.T) {
	_, err := execute(t, "route", "--from", "Kingston")
	require.ErrorIs(t, err, errMissingEndpoints)

	_, err = execute(t, "route", "--from", "Kingston", "--to", "Atlantis")
	require.ErrorIs(t, err, geograph.ErrInvalidNode)

	_, err = execute(t, "route", "--from", "Kingston", "--to", "Hanover", "-a", "bfs")
	require.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	_, err = execute(t, "route", "--from", "Kingston", "--to", "Hanover", "--heuristic", "manhattan")
	require.ErrorIs(t, err, errUnknownHeuristic)
}

func TestReport_NoPath(t *testing.T) {
	g, err := geograph.New([][]int64{{0, 0}, {0, 0}}, []geograph.Coordinate{{}, {Lat: 1}})
	require.NoError(t, err)
	res, err := pathfind.Dijkstra(g, 0, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, report(&out, g, 0, 1, res, 0))
	require.Contains(t, out.String(), "From: 0\nTo: 1\nDistance: no path\n")
	require.NotContains(t, out.String(), "Path:")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 14)
	require.Contains(t, lines[0], "Kingston")
	require.Contains(t, lines[13], "St. Thomas")
}

func TestNearest(t *testing.T) {
	out, err := execute(t, "nearest", "--lat", "18.40", "--lon", "-78.10")
	require.NoError(t, err)
	require.Equal(t, "7 Hanover\n", out)

	_, err = execute(t, "nearest", "--lat", "18.40")
	require.Error(t, err)
}
