// Package geo provides the geospatial primitives shared by the rest of
// roadgraph: a planar Point, a bounding box, and the distance functions
// used by the graph builder and search weight functions.
//
// Point equality is bitwise on the two float64 coordinates; Hash quantizes
// to roughly one-millimetre grid cells so that the graph builder can find
// coincident road endpoints and join them with a junction edge despite
// tiny floating point drift introduced by upstream OSM extraction tools.
//
// Complexity:
//
//   - Haversine / Within / distance functions are O(1).
//   - BBox.Include / Contains / Center are O(1).
package geo
