package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
	"github.com/arvidsson/roadgraph/weight"
)

func straightVertices() ([]road.Road, []core.Vertex) {
	roads := []road.Road{
		{ID: 0, Highway: road.HighwayPrimary, Maxspeed: 60, Lanes: 1},
	}
	vertices := []core.Vertex{
		{RoadIdx: 0, PointIdx: 0, Loc: geo.NewPoint(0, 0)},
		{RoadIdx: 0, PointIdx: 1, Loc: geo.NewPoint(0.001, 0)},
		{RoadIdx: 0, PointIdx: 2, Loc: geo.NewPoint(0.002, 0)},
	}

	return roads, vertices
}

func TestShortestPositive(t *testing.T) {
	t.Parallel()

	roads, vertices := straightVertices()
	w := weight.Shortest(roads, vertices, 0, 1, weight.NoPrev)
	assert.Greater(t, w, 0.1)
}

func TestShortestZeroDistanceStillPositive(t *testing.T) {
	t.Parallel()

	roads := []road.Road{{ID: 0}}
	vertices := []core.Vertex{
		{Loc: geo.NewPoint(0, 0)},
		{Loc: geo.NewPoint(0, 0)},
	}
	w := weight.Shortest(roads, vertices, 0, 1, weight.NoPrev)
	assert.Equal(t, 0.1, w)
}

func TestHeuristicAdmissibleShape(t *testing.T) {
	t.Parallel()

	roads, vertices := straightVertices()
	w := weight.Heuristic(roads, vertices, 0, 2, weight.NoPrev)
	assert.Greater(t, w, 1.0)
}

// S6 — straight path vs sharp detour of equal haversine length: Fastest
// must prefer the straight continuation (no turn penalty) over a sharp
// turn of equal segment length.
func TestFastestPrefersStraightOverSharpTurn(t *testing.T) {
	t.Parallel()

	roads := []road.Road{{ID: 0, Highway: road.HighwayResidential, Maxspeed: 50}}

	// prev -> from is a straight line along the x-axis; "straight" goes
	// further along it, "sharp" turns back at 45° over the same length.
	vertices := []core.Vertex{
		{RoadIdx: 0, Loc: geo.NewPoint(0, 0)},    // prev
		{RoadIdx: 0, Loc: geo.NewPoint(0.001, 0)}, // from
		{RoadIdx: 0, Loc: geo.NewPoint(0.002, 0)}, // straight continuation
		{RoadIdx: 0, Loc: geo.NewPoint(0.0002929, 0.0007071)}, // sharp detour, same length
	}

	straight := weight.Fastest(roads, vertices, 1, 2, 0)
	sharp := weight.Fastest(roads, vertices, 1, 3, 0)

	assert.Less(t, straight, sharp)
}

func TestFastestNonCarPenalty(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Highway: road.HighwayFootway, Maxspeed: -1},
		{ID: 1, Highway: road.HighwayFootway, Maxspeed: -1},
	}
	vertices := []core.Vertex{
		{RoadIdx: 0, Loc: geo.NewPoint(0, 0)},
		{RoadIdx: 1, Loc: geo.NewPoint(0.001, 0)},
	}

	carRoads := []road.Road{
		{ID: 0, Highway: road.HighwayPrimary, Maxspeed: 50},
		{ID: 1, Highway: road.HighwayPrimary, Maxspeed: 50},
	}

	nonCarCost := weight.Fastest(roads, vertices, 0, 1, weight.NoPrev)
	carCost := weight.Fastest(carRoads, vertices, 0, 1, weight.NoPrev)

	assert.Greater(t, nonCarCost, carCost)
}

func TestParseCoefficientsCommaAndPipe(t *testing.T) {
	t.Parallel()

	c1, err := weight.ParseCoefficients("1,2,3,4,5,6,7")
	require.NoError(t, err)

	c2, err := weight.ParseCoefficients("1|2|3|4|5|6|7")
	require.NoError(t, err)

	c3, err := weight.ParseCoefficients("1,2|3,4|5,6|7")
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, c1, c3)
	assert.Equal(t, 1.0, c1.Slow)
	assert.Equal(t, 7.0, c1.Tolls)
}

func TestParseCoefficientsWrongCount(t *testing.T) {
	t.Parallel()

	_, err := weight.ParseCoefficients("1,2,3")
	require.ErrorIs(t, err, weight.ErrInvalidCoefficients)
}

func TestCustomWeightEvaluates(t *testing.T) {
	t.Parallel()

	roads, vertices := straightVertices()
	c, err := weight.ParseCoefficients("0,0,1,0,0,0,0")
	require.NoError(t, err)

	fn := c.Custom()
	w := fn(roads, vertices, 0, 1, weight.NoPrev)

	assert.InDelta(t, geo.Haversine(vertices[0].Loc, vertices[1].Loc), w, 1e-6)
}

func TestCustomWeightSlowTermIsDirectSpeed(t *testing.T) {
	t.Parallel()

	roads, vertices := straightVertices()
	c, err := weight.ParseCoefficients("1,0,0,0,0,0,0")
	require.NoError(t, err)

	fn := c.Custom()
	w := fn(roads, vertices, 0, 1, weight.NoPrev)

	// road's maxspeed is 60 km/h, above the 30 km/h floor, so the slow
	// term is the plain speed in m/s with no inversion.
	assert.InDelta(t, 60.0/3.6, w, 1e-6)
}

func TestCustomWeightRatingTermIsScaledAndFloored(t *testing.T) {
	t.Parallel()

	roads, vertices := straightVertices()
	c, err := weight.ParseCoefficients("0,0,0,0,0,1,0")
	require.NoError(t, err)

	fn := c.Custom()
	w := fn(roads, vertices, 0, 1, weight.NoPrev)

	// HighwayPrimary rates 16, so the term is 64/16 = 4.
	assert.InDelta(t, 4.0, w, 1e-6)
}

func TestCustomWeightTollsRequiresBothEndsTolled(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Highway: road.HighwayPrimary, Maxspeed: 50, Toll: true},
		{ID: 1, Highway: road.HighwayPrimary, Maxspeed: 50, Toll: false},
	}
	vertices := []core.Vertex{
		{RoadIdx: 0, Loc: geo.NewPoint(0, 0)},
		{RoadIdx: 1, Loc: geo.NewPoint(0.001, 0)},
	}
	c, err := weight.ParseCoefficients("0,0,0,0,0,0,1")
	require.NoError(t, err)
	fn := c.Custom()

	oneSided := fn(roads, vertices, 0, 1, weight.NoPrev)
	assert.Equal(t, 0.0, oneSided)

	roads[1].Toll = true
	bothTolled := fn(roads, vertices, 0, 1, weight.NoPrev)
	assert.Equal(t, 1.0, bothTolled)
}
