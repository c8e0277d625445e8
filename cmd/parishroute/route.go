// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/heuristic"
	"github.com/katalvlaran/parishroute/parish"
	"github.com/katalvlaran/parishroute/pathfind"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	errMissingEndpoints = errors.New("please select both start and end parishes")
	errUnknownHeuristic = errors.New("unknown heuristic")
)

// titles mirror the labels of the original desktop form.
var titles = map[pathfind.Algorithm]string{
	pathfind.AlgDijkstra:  "Dijkstra's Algorithm",
	pathfind.AlgBestFirst: "Best-First Search Algorithm",
	pathfind.AlgAStar:     "A* Search Algorithm",
}

type routeOptions struct {
	from      string
	to        string
	algorithm string
	all       bool
	heuristic string
}

func newRouteCommand() *cobra.Command {
	o := &routeOptions{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a route between two parishes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&o.from, "from", "", "start parish name")
	cmd.Flags().StringVar(&o.to, "to", "", "end parish name")
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "dijkstra", "dijkstra, astar or bestfirst")
	cmd.Flags().BoolVar(&o.all, "all", false, "run every algorithm side by side")
	cmd.Flags().StringVar(&o.heuristic, "heuristic", "euclidean", "euclidean, haversine-km or zero")

	return cmd
}

func (o *routeOptions) run(out io.Writer) error {
	if strings.TrimSpace(o.from) == "" || strings.TrimSpace(o.to) == "" {
		return errMissingEndpoints
	}

	g := parish.Graph()
	start, err := resolve(g, o.from)
	if err != nil {
		return err
	}
	end, err := resolve(g, o.to)
	if err != nil {
		return err
	}
	h, err := parseHeuristic(o.heuristic)
	if err != nil {
		return err
	}

	algs := pathfind.Algorithms()
	if !o.all {
		alg, err := pathfind.ParseAlgorithm(o.algorithm)
		if err != nil {
			return err
		}
		algs = []pathfind.Algorithm{alg}
	}

	for i, alg := range algs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		began := time.Now()
		res, err := pathfind.Search(alg, g, start, end, pathfind.WithHeuristic(h))
		elapsed := time.Since(began)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		klog.V(2).InfoS("search finished",
			"algorithm", alg, "from", o.from, "to", o.to,
			"found", res.Found, "expanded", res.Expanded, "elapsed", elapsed)

		if err := report(out, g, start, end, res, elapsed); err != nil {
			return err
		}
	}

	return nil
}

// report prints one result in the layout of the original display label.
func report(out io.Writer, g *geograph.Graph, start, end geograph.NodeID, res pathfind.Result, elapsed time.Duration) error {
	from, _ := g.Name(start)
	to, _ := g.Name(end)

	var b strings.Builder
	fmt.Fprintf(&b, "%s selected\n", titles[res.Algorithm])
	fmt.Fprintf(&b, "From: %s\n", from)
	fmt.Fprintf(&b, "To: %s\n", to)
	if !res.Found {
		b.WriteString("Distance: no path\n")
	} else {
		fmt.Fprintf(&b, "Distance: %d\n", res.Distance)
		fmt.Fprintf(&b, "Path: %s\n", res.Describe(g))
		if res.Algorithm == pathfind.AlgBestFirst {
			w, err := pathfind.PathWeight(g, res.Path)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "Route weight: %d\n", w)
		}
	}
	fmt.Fprintf(&b, "Time: %s\n", elapsed)

	_, err := io.WriteString(out, b.String())
	return err
}

// resolve maps a parish name to its id, ignoring case and surrounding blanks.
func resolve(g *geograph.Graph, name string) (geograph.NodeID, error) {
	name = strings.TrimSpace(name)
	if id, err := g.Index(name); err == nil {
		return id, nil
	}
	for i, candidate := range g.Names() {
		if strings.EqualFold(candidate, name) {
			return geograph.NodeID(i), nil
		}
	}

	return geograph.NoNode, fmt.Errorf("unknown parish %q: %w", name, geograph.ErrInvalidNode)
}

func parseHeuristic(name string) (heuristic.Func, error) {
	switch strings.ToLower(name) {
	case "", "euclidean":
		return heuristic.Euclidean, nil
	case "haversine-km":
		return heuristic.Scaled(heuristic.Haversine, 0.001), nil
	case "zero":
		return heuristic.Zero, nil
	}

	return nil, fmt.Errorf("%w %q", errUnknownHeuristic, name)
}
