// SPDX-License-Identifier: MIT

package geograph

import (
	"math"

	"github.com/paulmach/orb"
)

// NodeID identifies a node by its dense index in [0, N).
type NodeID int

// NoNode is the "none" sentinel used for absent parents and failed lookups.
const NoNode NodeID = -1

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Point converts c to an orb.Point (X = longitude, Y = latitude).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// finite reports whether both components are real numbers.
func (c Coordinate) finite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0)
}

// Neighbor is one outgoing edge of a node.
type Neighbor struct {
	To     NodeID
	Weight int64
}

// Edge is an undirected edge reported with U < V.
type Edge struct {
	U, V   NodeID
	Weight int64
}
