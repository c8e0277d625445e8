// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/parishroute/geograph"
	"github.com/katalvlaran/parishroute/parish"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List parishes with their ids and coordinates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := parish.Graph()
			out := cmd.OutOrStdout()
			for i := 0; i < g.Len(); i++ {
				id := geograph.NodeID(i)
				name, _ := g.Name(id)
				c, _ := g.Coordinate(id)
				if _, err := fmt.Fprintf(out, "%2d  %-14s %8.4f %9.4f\n", id, name, c.Lat, c.Lon); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type nearestOptions struct {
	lat float64
	lon float64
}

func newNearestCommand() *cobra.Command {
	o := &nearestOptions{}
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the parish closest to a coordinate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := parish.Graph()
			id, err := g.Nearest(geograph.Coordinate{Lat: o.lat, Lon: o.lon})
			if err != nil {
				return err
			}
			name, _ := g.Name(id)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", id, name)
			return err
		},
	}
	cmd.Flags().Float64Var(&o.lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&o.lon, "lon", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
