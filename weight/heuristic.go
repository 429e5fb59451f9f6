package weight

import (
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
)

// Heuristic is A*'s admissible lower bound: 1 + 1000*planar_distance².
// Cheap and admissible in practice at city scale; deliberately not
// metre-calibrated.
func Heuristic(_ []road.Road, vertices []core.Vertex, from, to, _ int32) float64 {
	d2 := geo.DistanceSq(loc(vertices, from), loc(vertices, to))

	return 1 + 1000*d2
}
