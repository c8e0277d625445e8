// SPDX-License-Identifier: MIT
// Package parish ships the fourteen-parish road network of Jamaica as a
// ready-made geograph.Graph: parish names in index order, a representative
// latitude/longitude per parish, and a symmetric road-distance matrix.
//
// Index order (stable):
//
//	 0 Kingston        5 St. Elizabeth   10 St. Ann
//	 1 St. Andrew      6 Westmoreland    11 St. Mary
//	 2 St. Catherine   7 Hanover         12 Portland
//	 3 Clarendon       8 St. James       13 St. Thomas
//	 4 Manchester      9 Trelawny
//
// The network is a coastal ring (Kingston, St. Catherine, Clarendon, ...,
// Portland, St. Thomas and back) plus short links among Kingston,
// St. Andrew, St. Catherine and St. Thomas. Every parish is reachable.
package parish

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/parishroute/geograph"
)

// Node ids for each parish, matching the matrix order.
const (
	Kingston geograph.NodeID = iota
	StAndrew
	StCatherine
	Clarendon
	Manchester
	StElizabeth
	Westmoreland
	Hanover
	StJames
	Trelawny
	StAnn
	StMary
	Portland
	StThomas
)

var names = []string{
	"Kingston", "St. Andrew", "St. Catherine", "Clarendon", "Manchester",
	"St. Elizabeth", "Westmoreland", "Hanover", "St. James", "Trelawny",
	"St. Ann", "St. Mary", "Portland", "St. Thomas",
}

var coordinates = map[string]geograph.Coordinate{
	"Kingston":      {Lat: 17.9712, Lon: -76.7936},
	"St. Andrew":    {Lat: 18.0016, Lon: -76.7442},
	"St. Catherine": {Lat: 17.9648, Lon: -76.8768},
	"Clarendon":     {Lat: 18.0308, Lon: -77.2167},
	"Manchester":    {Lat: 18.0426, Lon: -77.5071},
	"St. Elizabeth": {Lat: 18.0055, Lon: -77.8541},
	"Westmoreland":  {Lat: 18.1923, Lon: -78.1334},
	"Hanover":       {Lat: 18.4057, Lon: -78.1334},
	"St. James":     {Lat: 18.4762, Lon: -77.8939},
	"Trelawny":      {Lat: 18.3268, Lon: -77.6595},
	"St. Ann":       {Lat: 18.4298, Lon: -77.1971},
	"St. Mary":      {Lat: 18.2312, Lon: -76.8782},
	"Portland":      {Lat: 18.1783, Lon: -76.4079},
	"St. Thomas":    {Lat: 17.9147, Lon: -76.4093},
}

// roads[u][v] is the road distance between parishes u and v; 0 = no road.
var roads = [][]int64{
	{0, 8, 25, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 20},
	{8, 0, 25, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5},
	{25, 25, 0, 32, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 32, 0, 38, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 38, 0, 27, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 27, 0, 30, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 30, 0, 26, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 26, 0, 18, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 18, 0, 22, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 22, 0, 20, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 20, 0, 19, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 19, 0, 25, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 25, 0, 22},
	{20, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 22, 0},
}

// Names returns the parish names in index order.
func Names() []string { return slices.Clone(names) }

// Coordinates returns a copy of the name→coordinate table.
func Coordinates() map[string]geograph.Coordinate {
	return maps.Clone(coordinates)
}

// Roads returns a deep copy of the road-distance matrix.
func Roads() [][]int64 {
	out := make([][]int64, len(roads))
	for i := range roads {
		out[i] = slices.Clone(roads[i])
	}
	return out
}

// Graph builds a fresh, validated graph of the parishes.
// Panics only if the embedded tables are malformed, which tests rule out.
func Graph(opts ...geograph.Option) *geograph.Graph {
	g, err := geograph.FromNamed(names, coordinates, roads, opts...)
	if err != nil {
		panic(fmt.Sprintf("parish: embedded network is invalid: %v", err))
	}
	return g
}
