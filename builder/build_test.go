package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsson/roadgraph/builder"
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/road"
)

func pts(coords ...[2]float32) []road.Point {
	out := make([]road.Point, len(coords))
	for i, c := range coords {
		out[i] = road.Point{Lon: c[0], Lat: c[1]}
	}

	return out
}

func TestBuildEmptyRoadList(t *testing.T) {
	t.Parallel()

	_, _, err := builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrEmptyRoadList)
}

// S1 — straight oneway road: [0,1,2,3] directed chain.
func TestBuildStraightRoad(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{0.001, 0}, [2]float32{0.002, 0}, [2]float32{0.003, 0})},
	}

	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)
	require.Len(t, vertices, 4)

	assert.Equal(t, []int32{1}, g.Adjacent(0))
	assert.Equal(t, []int32{2}, g.Adjacent(1))
	assert.Equal(t, []int32{3}, g.Adjacent(2))
	assert.Empty(t, g.Adjacent(3))
}

// S2 — two-road junction: bidirectional chain 0<->1<->2<->3 after merge.
func TestBuildJunctionMerge(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
		{ID: 1, Points: pts([2]float32{1, 0}, [2]float32{1, 1})},
	}

	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)
	require.Len(t, vertices, 4)

	// vertex 1 (end of road A) and vertex 2 (start of road B) coincide.
	assert.Contains(t, g.Adjacent(0), int32(1))
	assert.Contains(t, g.Adjacent(1), int32(0))
	assert.Contains(t, g.Adjacent(1), int32(2))
	assert.Contains(t, g.Adjacent(2), int32(1))
	assert.Contains(t, g.Adjacent(2), int32(3))
	assert.Contains(t, g.Adjacent(3), int32(2))
}

// S3 — roundabout closure: one-way ring p0->p1->p2->p3->p4->p0.
func TestBuildRoundaboutClosure(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Roundabout: true, Points: pts(
			[2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1}, [2]float32{-1, 0.5},
		)},
	}

	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)
	require.Len(t, vertices, 5)

	assert.Equal(t, []int32{1}, g.Adjacent(0))
	assert.Equal(t, []int32{2}, g.Adjacent(1))
	assert.Equal(t, []int32{3}, g.Adjacent(2))
	assert.Equal(t, []int32{4}, g.Adjacent(3))
	assert.Equal(t, []int32{0}, g.Adjacent(4))
}

// S4 — overpass without bridge handling: default permissive mode
// connects coincident points even when bridge differs; suppress mode
// does not.
func TestBuildOverpassBridgeModes(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Bridge: true, Points: pts([2]float32{0, 0}, [2]float32{1, 1}, [2]float32{2, 2})},
		{ID: 1, Bridge: false, Points: pts([2]float32{0, 2}, [2]float32{1, 1}, [2]float32{2, 0})},
	}

	gPermissive, _, err := builder.Build(roads, builder.WithBridgeMode(builder.BridgeModePermissive))
	require.NoError(t, err)
	assert.Contains(t, gPermissive.Adjacent(1), int32(4))

	gSuppress, _, err := builder.Build(roads, builder.WithBridgeMode(builder.BridgeModeSuppressMismatch))
	require.NoError(t, err)
	assert.NotContains(t, gSuppress.Adjacent(1), int32(4))
}

func TestBoundsReflectsVertexExtent(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{2, 3})},
	}

	_, vertices, err := builder.Build(roads)
	require.NoError(t, err)

	b := builder.Bounds(vertices)
	assert.InDelta(t, 0, b.MinLon, 1e-9)
	assert.InDelta(t, 0, b.MinLat, 1e-9)
	assert.InDelta(t, 2, b.MaxLon, 1e-9)
	assert.InDelta(t, 3, b.MaxLat, 1e-9)
}

func TestBuildMatrixBackend(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
	}

	g, _, err := builder.Build(roads, builder.WithBackend(2))
	require.Error(t, err) // Backend(2) is not a valid core.Backend value

	g, _, err = builder.Build(roads, builder.WithBackend(core.BackendMatrix))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}
