package core

import (
	"fmt"
	"sync"

	"github.com/arvidsson/roadgraph/diag"
	"github.com/arvidsson/roadgraph/geo"
)

// Vertex is a reference to a Road plus one specific Point inside that
// road's polyline. RoadIdx and PointIdx index into the caller's road
// arena; Vertex never holds a pointer into it (§9's arena+index
// design). Vertices are dense: their position in Graph's vertex table
// is their own index, stable for the graph's lifetime.
type Vertex struct {
	RoadIdx  int32
	PointIdx int32
	Loc      geo.Point
}

// Backend selects the adjacency representation a Graph is built with.
type Backend uint8

const (
	// BackendList is the default: per-vertex neighbour sets, O(V+E) memory.
	BackendList Backend = iota
	// BackendMatrix is an N×N neighbour-index matrix, O(V²) memory, kept
	// for pedagogical/benchmarking comparison against BackendList.
	BackendMatrix
)

// adjacency is the narrow backend contract both BackendList and
// BackendMatrix satisfy. Graph dispatches through this interface; the
// backend choice is fixed at construction (§4.3's "polymorphism
// without inheritance" design note — one interface, two variants, no
// hierarchy).
type adjacency interface {
	size() int
	contains(i int32) bool
	adjacent(i int32) []int32
	edge(from, to int32) error
	bEdge(a, b int32) error
	sizeOf() int
}

// GraphOption configures a Graph before construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	backend           Backend
	matrixBudgetBytes int64
	confirmMatrix     func(vertexCount int, bytes int64) bool
}

// defaultMatrixBudgetBytes is the memory ceiling past which BackendMatrix
// requires interactive confirmation (§4.3, §7 resource-warning).
const defaultMatrixBudgetBytes = 256 * 1024 * 1024

func newGraphConfig(opts ...GraphOption) *graphConfig {
	cfg := &graphConfig{
		backend:           BackendList,
		matrixBudgetBytes: defaultMatrixBudgetBytes,
		confirmMatrix:     func(int, int64) bool { return false },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithBackend selects the adjacency representation.
func WithBackend(b Backend) GraphOption {
	return func(cfg *graphConfig) { cfg.backend = b }
}

// WithMatrixBudget overrides the byte budget BackendMatrix is allowed
// to consume (V² * 4 bytes) before requiring confirmation.
func WithMatrixBudget(bytes int64) GraphOption {
	return func(cfg *graphConfig) {
		if bytes > 0 {
			cfg.matrixBudgetBytes = bytes
		}
	}
}

// WithMatrixConfirm supplies the interactive-confirmation callback used
// when BackendMatrix's footprint exceeds the budget. Returning false
// aborts construction with ErrMatrixBudgetExceeded.
func WithMatrixConfirm(confirm func(vertexCount int, bytes int64) bool) GraphOption {
	return func(cfg *graphConfig) {
		if confirm != nil {
			cfg.confirmMatrix = confirm
		}
	}
}

// Graph is a directed graph over a dense 0..N-1 vertex index space,
// backed by either an adjacency list or an adjacency matrix.
//
// muVert guards Vertices; muAdj guards the backend. A Graph built once
// may safely be queried (Adjacent, Contains, Size) concurrently by
// multiple searches; mutation (Edge, BEdge) is intended to happen only
// during construction in builder.Build.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	vertices []Vertex
	adj      adjacency
}

// NewGraph allocates a Graph over the given vertices with no edges,
// using the backend selected by opts. Returns ErrMatrixBudgetExceeded
// if BackendMatrix's footprint exceeds the configured budget and the
// confirmation callback declines.
func NewGraph(vertices []Vertex, opts ...GraphOption) (*Graph, error) {
	cfg := newGraphConfig(opts...)

	n := len(vertices)

	var adj adjacency
	switch cfg.backend {
	case BackendList:
		adj = newAdjacencyList(n)
	case BackendMatrix:
		footprint := int64(n) * int64(n) * 4
		if footprint > cfg.matrixBudgetBytes {
			if !cfg.confirmMatrix(n, footprint) {
				return nil, fmt.Errorf("%w: %d vertices needs %d bytes, budget %d",
					ErrMatrixBudgetExceeded, n, footprint, cfg.matrixBudgetBytes)
			}
		}
		adj = newAdjacencyMatrix(n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, cfg.backend)
	}

	return &Graph{
		vertices: vertices,
		adj:      adj,
	}, nil
}

// Size returns the number of vertices N.
func (g *Graph) Size() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Contains reports whether i is a valid vertex index.
func (g *Graph) Contains(i int32) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.adj.contains(i)
}

// Vertex returns the Vertex at index i.
func (g *Graph) Vertex(i int32) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if i < 0 || int(i) >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, i)
	}

	return g.vertices[i], nil
}

// Adjacent returns i's neighbour indices. Order is unspecified but
// stable for a given graph instance (§4.3).
func (g *Graph) Adjacent(i int32) []int32 {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.adj.adjacent(i)
}

// Edge adds a directed edge from -> to. Idempotent; rejects self-loops.
func (g *Graph) Edge(from, to int32) error {
	if from == to {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, from)
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	return g.adj.edge(from, to)
}

// BEdge adds edges in both directions between a and b.
func (g *Graph) BEdge(a, b int32) error {
	if err := g.Edge(a, b); err != nil {
		return err
	}

	return g.Edge(b, a)
}

// vertexBytes is the estimated inline footprint of a Vertex value:
// two int32 indices plus a geo.Point of two float64s.
const vertexBytes = 4 + 4 + 16

// SizeOf estimates g's byte footprint, including the vertex table and
// the backing adjacency backend's capacity-backed overhead.
func (g *Graph) SizeOf() int {
	g.muVert.RLock()
	vertexSize := diag.SliceBytes(g.vertices, vertexBytes)
	g.muVert.RUnlock()

	g.muAdj.RLock()
	adjSize := g.adj.sizeOf()
	g.muAdj.RUnlock()

	return vertexSize + adjSize
}
