// Package builder constructs a core.Graph from a flat road list in
// three passes: flatten every road's coordinates into a dense vertex
// table, connect consecutive points within each road (honouring
// oneway/roundabout direction and closing roundabout rings), then
// merge coincident endpoints across roads into junctions using a
// point-hash bucket map.
//
// The bucket map is scoped to Build and discarded before it returns;
// nothing outside Build retains it, matching the "shared resources"
// lifecycle in the concurrency model this package follows.
package builder
