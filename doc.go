// Package roadgraph is an offline road-network route planner: it
// parses a newline-delimited GeoJSON map into a dense, index-based
// graph, and runs Dijkstra, A*, BFS, or DFS over it using one of
// several weight functions, producing a path plus diagnostic
// counters.
//
// The module is organized as a flat set of domain packages rather
// than an internal/ tree, each corresponding to one stage of the
// pipeline:
//
//	geo/           — Point, BBox, haversine/planar distance, coordinate parsing
//	road/          — the Road model, GeoJSON parsing, binary cache
//	core/          — the dense Graph abstraction (list and matrix backends)
//	builder/       — Road list -> (core.Graph, vertex list)
//	weight/        — Shortest, Heuristic, Fastest, Custom edge-cost functions
//	trace/         — append-only trace ledger consumed frame by frame
//	diag/          — per-search counters and byte-size estimates
//	search/        — Dijkstra, A*, BFS, DFS, and path reconstruction
//	cmd/routeplan/ — the CLI wrapper
//
// Data flows one way through these packages: road parses raw text into
// Road records, builder turns a Road list into a core.Graph, search
// runs over that graph using a weight.Func, and diag/trace are
// threaded through every phase so a caller can inspect what a search
// actually did after the fact.
package roadgraph
