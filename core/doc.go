// Package core defines the dense, index-based Graph abstraction shared
// by the builder and search packages: a Vertex table addressed by
// stable int32 indices, and two interchangeable adjacency backends
// (list and matrix) behind a single Graph interface.
//
// Graph keeps split sync.RWMutex guards (one for the vertex table, one
// for adjacency) so a graph built once may be queried by multiple
// concurrent searches, even though any single search runs to
// completion on one goroutine.
package core
