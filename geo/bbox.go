package geo

import "math"

// BBox is an axis-aligned bounding box in (longitude, latitude) degrees.
// A zero-value BBox is empty; use Bounds or Include to populate one.
type BBox struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64

	set bool
}

// Bounds folds a point slice into the smallest BBox containing them all.
// Returns an empty BBox for a nil/empty slice.
func Bounds(points []Point) BBox {
	var b BBox
	for _, p := range points {
		b.Include(p)
	}

	return b
}

// Include grows b, if necessary, to contain p. Safe on a zero-value BBox.
func (b *BBox) Include(p Point) {
	if !b.set {
		b.MinLon, b.MaxLon = p.Lon, p.Lon
		b.MinLat, b.MaxLat = p.Lat, p.Lat
		b.set = true

		return
	}

	b.MinLon = math.Min(b.MinLon, p.Lon)
	b.MaxLon = math.Max(b.MaxLon, p.Lon)
	b.MinLat = math.Min(b.MinLat, p.Lat)
	b.MaxLat = math.Max(b.MaxLat, p.Lat)
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BBox) Contains(p Point) bool {
	if !b.set {
		return false
	}

	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// Center returns the midpoint of b.
func (b BBox) Center() Point {
	return Point{
		Lon: (b.MinLon + b.MaxLon) / 2,
		Lat: (b.MinLat + b.MaxLat) / 2,
	}
}

// Area returns the box's area in square degrees. Not geodesically
// correct (degrees aren't a uniform unit of distance); only a cheap
// size signal.
func (b BBox) Area() float64 {
	if !b.set {
		return 0
	}

	return (b.MaxLon - b.MinLon) * (b.MaxLat - b.MinLat)
}

// Empty reports whether b has never had a point included.
func (b BBox) Empty() bool {
	return !b.set
}
