package weight

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gotidy/ptr"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/road"
)

// Coefficients is the seven-term linear combination Custom evaluates.
// Field order matches the external custom-weights input format:
// slow,time,distance,turn_penalty,nonroad_penalty,rating,tolls.
type Coefficients struct {
	Slow           float64
	Time           float64
	Distance       float64
	TurnPenalty    float64
	NonroadPenalty float64
	Rating         float64
	Tolls          float64
}

// separatorRe splits on either ',' or '|', tolerating a mix of both in
// the same string per the accepted-and-tested Open Question resolution.
var separatorRe = regexp.MustCompile(`[,|]`)

// ParseCoefficients parses a string of exactly seven floats separated
// by ',' or '|' (mixed separators tolerated) into Coefficients.
func ParseCoefficients(s string) (Coefficients, error) {
	fields := separatorRe.Split(strings.TrimSpace(s), -1)
	if len(fields) != 7 {
		return Coefficients{}, fmt.Errorf("%w: expected 7 coefficients, got %d", ErrInvalidCoefficients, len(fields))
	}

	values := make([]*float64, 7)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Coefficients{}, fmt.Errorf("%w: field %d: %v", ErrInvalidCoefficients, i, err)
		}
		values[i] = ptr.Float64(v)
	}

	return Coefficients{
		Slow:           *values[0],
		Time:           *values[1],
		Distance:       *values[2],
		TurnPenalty:    *values[3],
		NonroadPenalty: *values[4],
		Rating:         *values[5],
		Tolls:          *values[6],
	}, nil
}

// ratingCustomScale is the scale Custom's rating term applies before
// dividing by the average rating (floored at 1): the term is 1 for
// motorways (rating 64, the best) and 64 for ratings of 1 or less.
const ratingCustomScale = 64.0

// Custom builds a Func evaluating c's linear combination of the same
// sub-costs Fastest uses: a direct speed term, travel time, haversine
// distance, the turn-angle penalty magnitude, a non-car-class
// indicator, a scaled inverse-rating term, and a both-ends-tolled
// indicator.
func (c Coefficients) Custom() Func {
	return func(roads []road.Road, vertices []core.Vertex, from, to, prev int32) float64 {
		fromRoad := roadOf(roads, vertices, from)
		toRoad := roadOf(roads, vertices, to)

		avgMaxspeed := (effectiveSpeed(fromRoad) + effectiveSpeed(toRoad)) / 2
		speedMS := math.Max(minSpeedKMH, avgMaxspeed) / 3.6
		distance := geoHaversine(vertices, from, to)

		var turnMagnitude float64
		if prev != NoPrev {
			if angle, ok := turnAngle(vertices, prev, from, to); ok && angle < turnAngleThreshold {
				turnMagnitude = turnAngleThreshold - angle
			}
		}

		var nonroad float64
		if fromRoad.Highway.IsNonCar() && toRoad.Highway.IsNonCar() {
			nonroad = 1
		}

		var tolls float64
		if fromRoad.Toll && toRoad.Toll {
			tolls = 1
		}

		avgRating := math.Max(1, (fromRoad.Rating()+toRoad.Rating())/2)

		return c.Slow*speedMS +
			c.Time*(distance/speedMS) +
			c.Distance*distance +
			c.TurnPenalty*turnMagnitude +
			c.NonroadPenalty*nonroad +
			c.Rating*ratingCustomScale/avgRating +
			c.Tolls*tolls
	}
}
