package builder

import (
	"fmt"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
)

// junctionTolerance is the Within() distance, in metres, used to
// confirm a hash-bucket collision before adding a junction edge.
const junctionTolerance = 1.0

// Build constructs a directed core.Graph and its vertex list from
// roads, in three passes: flatten, intra-road edges (with roundabout
// ring closure), and inter-road junction merging.
//
// Complexity: linear in total coordinate count plus bucket-pair
// comparisons, bounded in practice by O(V) with a low constant for
// real maps.
func Build(roads []road.Road, opts ...Option) (*core.Graph, []core.Vertex, error) {
	if len(roads) == 0 {
		return nil, nil, ErrEmptyRoadList
	}

	cfg := newConfig(opts...)

	vertices, segments := flatten(roads)

	g, err := newGraph(vertices, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := connectIntraRoad(g, roads, vertices, segments); err != nil {
		return nil, nil, err
	}

	if err := mergeJunctions(g, roads, vertices, cfg); err != nil {
		return nil, nil, err
	}

	return g, vertices, nil
}

// Bounds returns the geographic bounding box of a built graph's
// vertices, for reporting the graph's extent in diagnostics or sizing
// an initial viewport.
func Bounds(vertices []core.Vertex) geo.BBox {
	points := make([]geo.Point, len(vertices))
	for i, v := range vertices {
		points[i] = v.Loc
	}

	return geo.Bounds(points)
}

func newGraph(vertices []core.Vertex, cfg *config) (*core.Graph, error) {
	var graphOpts []core.GraphOption

	graphOpts = append(graphOpts, core.WithBackend(cfg.backend))
	if cfg.matrixBudget > 0 {
		graphOpts = append(graphOpts, core.WithMatrixBudget(cfg.matrixBudget))
	}
	if cfg.confirmMatrix != nil {
		graphOpts = append(graphOpts, core.WithMatrixConfirm(cfg.confirmMatrix))
	}

	return core.NewGraph(vertices, graphOpts...)
}

// flatten walks roads in order, emitting one Vertex per coordinate
// into a dense global vertex list, and records the vertex index
// immediately after each road's last vertex into segments — the
// boundary intra-road edges never cross.
func flatten(roads []road.Road) ([]core.Vertex, []int32) {
	var vertices []core.Vertex
	segments := make([]int32, len(roads))

	for roadIdx, r := range roads {
		for pointIdx, p := range r.Points {
			vertices = append(vertices, core.Vertex{
				RoadIdx:  int32(roadIdx),
				PointIdx: int32(pointIdx),
				Loc:      geo.NewPoint(float64(p.Lon), float64(p.Lat)),
			})
		}
		segments[roadIdx] = int32(len(vertices))
	}

	return vertices, segments
}

// connectIntraRoad adds edges between consecutive vertices of the same
// road, directed when the road is oneway or a roundabout, bidirectional
// otherwise, and closes roundabout rings with a directed edge from the
// road's last vertex back to its first.
func connectIntraRoad(g *core.Graph, roads []road.Road, vertices []core.Vertex, segments []int32) error {
	start := int32(0)

	for roadIdx, r := range roads {
		end := segments[roadIdx]

		for i := start + 1; i < end; i++ {
			prev, curr := i-1, i

			if r.Oneway || r.Roundabout {
				if err := g.Edge(prev, curr); err != nil {
					return fmt.Errorf("builder: intra-road edge %d->%d: %w", prev, curr, err)
				}
			} else {
				if err := g.BEdge(prev, curr); err != nil {
					return fmt.Errorf("builder: intra-road edge %d<->%d: %w", prev, curr, err)
				}
			}
		}

		if r.Roundabout && end-start >= 2 {
			first, last := start, end-1
			if err := g.Edge(last, first); err != nil {
				return fmt.Errorf("builder: roundabout closure %d->%d: %w", last, first, err)
			}
		}

		start = end
	}

	return nil
}

// junctionBucket is the per-location data the hash map groups together
// before pairwise confirmation.
type junctionBucket struct {
	vertex int32
	bridge bool
}

// mergeJunctions builds a location hash map scoped to this call,
// compares same-bucket vertices pairwise with geo.Within to rule out
// rare hash collisions outside the 1m cell, and adds bidirectional
// edges between confirmed coincidences.
func mergeJunctions(g *core.Graph, roads []road.Road, vertices []core.Vertex, cfg *config) error {
	buckets := make(map[uint64][]junctionBucket)

	for i, v := range vertices {
		h := v.Loc.Hash()
		buckets[h] = append(buckets[h], junctionBucket{
			vertex: int32(i),
			bridge: roads[v.RoadIdx].Bridge,
		})
	}

	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}

		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]

				if a.vertex == b.vertex {
					continue
				}
				if !geo.Within(vertices[a.vertex].Loc, vertices[b.vertex].Loc, junctionTolerance) {
					continue
				}
				if cfg.bridgeMode == BridgeModeSuppressMismatch && a.bridge != b.bridge {
					continue
				}

				if err := g.BEdge(a.vertex, b.vertex); err != nil {
					return fmt.Errorf("builder: junction edge %d<->%d: %w", a.vertex, b.vertex, err)
				}
			}
		}
	}

	return nil
}
