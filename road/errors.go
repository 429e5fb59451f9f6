package road

import "errors"

// ErrMalformedLine indicates a GeoJSON line that the decoder rejected
// outright: broken JSON, a Feature with no geometry, or a geometry type
// other than LineString/MultiLineString/MultiPolygon.
var ErrMalformedLine = errors.New("road: malformed GeoJSON line")

// ErrEmptyGeometry indicates a Feature whose coordinate sequence has
// zero points, which violates the Road.Points length ≥ 1 invariant.
var ErrEmptyGeometry = errors.New("road: empty coordinate sequence")

// ErrCacheIO indicates the cache file could not be opened, read, or
// written.
var ErrCacheIO = errors.New("road: cache I/O error")

// ErrCacheCorrupt indicates the cache file's binary layout did not match
// the expected record format (short read, impossible length prefix).
var ErrCacheCorrupt = errors.New("road: corrupt cache record")
