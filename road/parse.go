package road

import (
	"fmt"
	"strconv"

	"github.com/gotidy/ptr"
	geojson "github.com/paulmach/go.geojson"
)

// ParseLine parses one newline-delimited GeoJSON Feature line into a
// Road. The geometry must be LineString (an ordinary road),
// MultiLineString (its lines are concatenated in order, with no
// roundabout implication), or MultiPolygon (its first polygon's outer
// ring becomes the road's points and Roundabout is forced true — every
// multipolygon feature in the input is an enclosed loop).
//
// Missing properties resolve to documented defaults rather than errors:
// maxspeed=-1, lanes=1, all booleans false, strings empty,
// highway=HighwayUnknown. Only malformed JSON, a missing geometry, or
// an unsupported geometry type is reported as ErrMalformedLine; a
// geometry with zero coordinates is ErrEmptyGeometry.
func ParseLine(line []byte, id int32) (Road, error) {
	feature, err := geojson.UnmarshalFeature(line)
	if err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if feature.Geometry == nil {
		return Road{}, fmt.Errorf("%w: no geometry", ErrMalformedLine)
	}

	var (
		coords     [][]float64
		roundabout bool
	)

	switch {
	case feature.Geometry.Type == geojson.GeometryLineString:
		coords = feature.Geometry.LineString
	case feature.Geometry.Type == geojson.GeometryMultiLineString:
		for _, line := range feature.Geometry.MultiLineString {
			coords = append(coords, line...)
		}
	case feature.Geometry.Type == geojson.GeometryMultiPolygon:
		roundabout = true
		if len(feature.Geometry.MultiPolygon) > 0 {
			coords = feature.Geometry.MultiPolygon[0][0]
		}
	default:
		return Road{}, fmt.Errorf("%w: unsupported geometry %q", ErrMalformedLine, feature.Geometry.Type)
	}

	if len(coords) == 0 {
		return Road{}, ErrEmptyGeometry
	}

	points := make([]Point, len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return Road{}, fmt.Errorf("%w: coordinate %d has fewer than 2 components", ErrMalformedLine, i)
		}
		points[i] = Point{Lon: float32(c[0]), Lat: float32(c[1])}
	}

	highway := parseHighway(feature.PropertyMustString("highway", "unknown"))

	roundabout = roundabout || feature.PropertyMustString("junction", "") == "roundabout"

	r := Road{
		ID:         id,
		Points:     points,
		Highway:    highway,
		Name:       feature.PropertyMustString("name", ""),
		Ref:        feature.PropertyMustString("ref", ""),
		Roundabout: roundabout,
		Oneway:     roundabout || boolTag(feature, "oneway"),
		Bridge:     boolTag(feature, "bridge"),
		Toll:       boolTag(feature, "toll"),
		Lit:        boolTag(feature, "lit"),
		Maxspeed:   int32Tag(feature, "maxspeed", -1),
		Lanes:      int32Tag(feature, "lanes", 1),
	}
	if idTag, err := feature.PropertyFloat64("id"); err == nil {
		r.ID = int32(idTag)
	}

	return r, nil
}

// boolTag reports whether key's value equals the OSM truthy spelling
// "yes". Absent or any other value is false.
func boolTag(f *geojson.Feature, key string) bool {
	return f.PropertyMustString(key, "") == "yes"
}

// int32Tag extracts an integer-valued tag, tolerating both numeric and
// string JSON encodings (OSM extracts commonly emit "30" as a string).
// The result is carried as an optional *int32 until the final default
// substitution, mirroring how the rest of the parser treats absent tags.
func int32Tag(f *geojson.Feature, key string, def int32) int32 {
	var val *int32

	if v, err := f.PropertyFloat64(key); err == nil {
		val = ptr.Int32(int32(v))
	} else if s, err := f.PropertyString(key); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			val = ptr.Int32(int32(n))
		}
	}

	if val == nil {
		return def
	}

	return *val
}
