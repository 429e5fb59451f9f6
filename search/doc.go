// Package search implements the four traversal algorithms the planner
// offers — Dijkstra, A*, BFS, DFS — sharing a predecessor array, a
// trace.Ledger, and diag.Counters, and path reconstruction over the
// resulting prev[] array.
//
// Dijkstra and A* use a container/heap min-heap and push a duplicate
// entry instead of decreasing a key in place. Dijkstra ignores stale
// pops through its visited set, the same approach the graph library
// this package is modelled on uses for its own Dijkstra; A* keeps no
// visited set and expands a vertex each time one of its entries pops.
package search
