package weight

import (
	"math"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
)

// turnAngleThreshold is π/3: turns sharper than this incur a penalty.
const turnAngleThreshold = math.Pi / 3

// turnPenaltyFactor scales how sharply the penalty grows below the
// threshold.
const turnPenaltyFactor = 15000.0

// minSpeedKMH floors the effective speed used for time-cost estimation,
// so an unknown or implausibly low maxspeed never produces an inflated
// cost.
const minSpeedKMH = 30.0

// roadChangePenalty is the extra cost incurred when from and to lie
// on different roads — equivalently, the reward for staying on the
// same road is simply not paying this.
const roadChangePenalty = 200.0

const nonCarPenalty = 1000.0
const ratingWeight = 100.0

// Fastest is a composite time-oriented cost: a turn penalty, a base
// travel-time cost, a same-road preference, a non-car class penalty,
// and a rating-based tie-breaker. See turnAngle for how the turn
// penalty is computed and disabled.
func Fastest(roads []road.Road, vertices []core.Vertex, from, to, prev int32) float64 {
	cost := 0.0

	if prev != NoPrev {
		if angle, ok := turnAngle(vertices, prev, from, to); ok && angle < turnAngleThreshold {
			cost += turnPenaltyFactor * (turnAngleThreshold - angle)
		}
	}

	fromRoad := roadOf(roads, vertices, from)
	toRoad := roadOf(roads, vertices, to)

	avgMaxspeed := (effectiveSpeed(fromRoad) + effectiveSpeed(toRoad)) / 2
	speedMS := math.Max(minSpeedKMH, avgMaxspeed) / 3.6

	cost += (geoHaversine(vertices, from, to) / speedMS) * 500

	if fromRoad.ID != toRoad.ID {
		cost += roadChangePenalty
	}

	if fromRoad.Highway.IsNonCar() && toRoad.Highway.IsNonCar() {
		cost += nonCarPenalty
	}

	avgRating := math.Max(1, (fromRoad.Rating()+toRoad.Rating())/2)
	cost += ratingWeight / avgRating

	return cost
}

func effectiveSpeed(r road.Road) float64 {
	if r.Maxspeed < 0 {
		return minSpeedKMH
	}

	return float64(r.Maxspeed)
}

// turnAngle computes ∠(prev,from,to) via the law of cosines over the
// three haversine side lengths. Returns ok=false when any two of the
// three points coincide, in which case the penalty is disabled rather
// than treated as a 0-radian hairpin.
func turnAngle(vertices []core.Vertex, prev, from, to int32) (float64, bool) {
	p, f, t := loc(vertices, prev), loc(vertices, from), loc(vertices, to)

	a := geo.Haversine(p, f)
	b := geo.Haversine(f, t)
	c := geo.Haversine(p, t)

	if a == 0 || b == 0 || c == 0 {
		return 0, false
	}

	cosAngle := (a*a + b*b - c*c) / (2 * a * b)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return math.Acos(cosAngle), true
}
