package core

import (
	"fmt"

	"github.com/arvidsson/roadgraph/diag"
)

// adjacencyList is the preferred-default backend: a per-vertex
// deduplicated set of neighbour indices. Memory O(V + E).
type adjacencyList struct {
	neighbors []map[int32]struct{}
	// order preserves first-insertion order per vertex so adjacent()
	// returns a stable iteration order, per the Graph invariant.
	order [][]int32
}

func newAdjacencyList(n int) *adjacencyList {
	l := &adjacencyList{
		neighbors: make([]map[int32]struct{}, n),
		order:     make([][]int32, n),
	}
	for i := range l.neighbors {
		l.neighbors[i] = make(map[int32]struct{})
	}

	return l
}

func (l *adjacencyList) size() int {
	return len(l.neighbors)
}

func (l *adjacencyList) contains(i int32) bool {
	return i >= 0 && int(i) < len(l.neighbors)
}

func (l *adjacencyList) adjacent(i int32) []int32 {
	if !l.contains(i) {
		return nil
	}

	return l.order[i]
}

func (l *adjacencyList) edge(from, to int32) error {
	if !l.contains(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !l.contains(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	if _, exists := l.neighbors[from][to]; exists {
		return nil
	}

	l.neighbors[from][to] = struct{}{}
	l.order[from] = append(l.order[from], to)

	return nil
}

func (l *adjacencyList) bEdge(a, b int32) error {
	if err := l.edge(a, b); err != nil {
		return err
	}

	return l.edge(b, a)
}

func (l *adjacencyList) sizeOf() int {
	total := 0
	for _, row := range l.order {
		total += diag.SliceBytes(row, 4)
	}
	for _, set := range l.neighbors {
		total += len(set) * (4 + diag.PointerOverhead)
	}

	return total
}
