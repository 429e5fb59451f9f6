package weight

import (
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
)

// NoPrev is the sentinel passed as prev when from is the search source
// and therefore has no predecessor on the current best path.
const NoPrev int32 = -1

// Func computes the non-negative cost of traversing the edge from->to,
// given prev (the predecessor of from along the current best path, or
// NoPrev at the source), and is used both as an edge weight and — for
// Heuristic specifically — as an admissible, consistent lower bound for
// A*.
type Func func(roads []road.Road, vertices []core.Vertex, from, to, prev int32) float64

func loc(vertices []core.Vertex, i int32) geo.Point {
	return vertices[i].Loc
}

func roadOf(roads []road.Road, vertices []core.Vertex, i int32) road.Road {
	return roads[vertices[i].RoadIdx]
}

func geoHaversine(vertices []core.Vertex, from, to int32) float64 {
	return geo.Haversine(loc(vertices, from), loc(vertices, to))
}
