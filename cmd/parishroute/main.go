// SPDX-License-Identifier: MIT
// Command parishroute finds routes across the Jamaican parish network with
// Dijkstra, greedy best-first, or A* search and reports distance, path and
// elapsed time.
//
//	parishroute route --from Kingston --to Hanover --algorithm astar
//	parishroute route --from Kingston --to Hanover --all
//	parishroute nearest --lat 18.3 --lon -77.9
//	parishroute list
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := newRootCommand()
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "command failed")
		klog.Flush()
		os.Exit(1)
	}
}

// newRootCommand wires every subcommand; tests build it fresh per case.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "parishroute",
		Short:         "Route between Jamaican parishes with Dijkstra, best-first or A* search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRouteCommand(),
		newListCommand(),
		newNearestCommand(),
	)

	return root
}
