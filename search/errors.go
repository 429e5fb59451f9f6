package search

import "errors"

// ErrSourceNotFound indicates the requested source vertex index is
// outside the graph's vertex range.
var ErrSourceNotFound = errors.New("search: source vertex not found")

// ErrTargetNotFound indicates the requested target vertex index is
// outside the graph's vertex range.
var ErrTargetNotFound = errors.New("search: target vertex not found")
