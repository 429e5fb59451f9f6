package builder

import "errors"

// ErrEmptyRoadList indicates Build was called with no roads, which
// cannot produce a usable graph.
var ErrEmptyRoadList = errors.New("builder: empty road list")
