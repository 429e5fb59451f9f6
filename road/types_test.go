package road_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvidsson/roadgraph/road"
)

func TestRatingMonotone(t *testing.T) {
	t.Parallel()

	motorway := road.Road{Highway: road.HighwayMotorway}
	residential := road.Road{Highway: road.HighwayResidential}
	unknown := road.Road{Highway: road.HighwayUnknown}

	assert.Equal(t, 64.0, motorway.Rating())
	assert.Equal(t, 2.0, residential.Rating())
	assert.Equal(t, 0.01, unknown.Rating())
	assert.Greater(t, motorway.Rating(), residential.Rating())
	assert.Greater(t, residential.Rating(), unknown.Rating())
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	r := road.Road{Highway: road.HighwayMotorway, Maxspeed: 100, Lanes: 2}
	// max(100/50*2, 0.5) * 64 = max(4, 0.5) * 64 = 256
	assert.Equal(t, 256.0, r.Visibility())

	low := road.Road{Highway: road.HighwayMotorway, Maxspeed: -1, Lanes: 1}
	assert.Equal(t, 32.0, low.Visibility())
}

func TestIsNonCar(t *testing.T) {
	t.Parallel()

	assert.True(t, road.HighwayFootway.IsNonCar())
	assert.True(t, road.HighwayUnknown.IsNonCar())
	assert.False(t, road.HighwayMotorway.IsNonCar())
	assert.False(t, road.HighwayResidential.IsNonCar())
}

func TestHighwayStringRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "motorway", road.HighwayMotorway.String())
	assert.Equal(t, "unknown", road.HighwayUnknown.String())
}

func TestRoadString(t *testing.T) {
	t.Parallel()

	r := road.Road{
		ID:      7,
		Highway: road.HighwayPrimary,
		Name:    "Main St",
		Points:  []road.Point{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}},
		Oneway:  true,
	}

	s := r.String()
	assert.Contains(t, s, "Main St")
	assert.Contains(t, s, "oneway")
	assert.Contains(t, s, "primary")
}
