// Package road parses newline-delimited GeoJSON road features into Road
// values, and reads/writes the compact binary cache used to skip
// re-parsing on subsequent runs.
//
// Each input line is one GeoJSON Feature whose geometry is a LineString
// (a normal road), a MultiLineString (its lines concatenated, not a
// roundabout) or a MultiPolygon (treated as a roundabout). Missing tags
// resolve to documented defaults rather than errors; only a malformed
// line, an unrecognised geometry type or an empty coordinate sequence is
// a parse error.
package road
