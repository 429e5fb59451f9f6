package core

import (
	"fmt"

	"github.com/arvidsson/roadgraph/diag"
)

// sentinelNone marks the absence of an edge in an adjacencyMatrix cell.
const sentinelNone int32 = -1

// adjacencyMatrix is the N×N backend kept for pedagogical and
// benchmarking comparison against adjacencyList. Memory O(V²). Cell
// (i,j) holds j when the edge i->j exists, sentinelNone otherwise —
// literally "neighbour index or sentinel -1" per the representation
// contract, rather than a plain boolean, so a populated row can be
// read directly as its own neighbour list.
type adjacencyMatrix struct {
	n     int
	cells []int32 // row-major, n*n
}

func newAdjacencyMatrix(n int) *adjacencyMatrix {
	cells := make([]int32, n*n)
	for i := range cells {
		cells[i] = sentinelNone
	}

	return &adjacencyMatrix{n: n, cells: cells}
}

func (m *adjacencyMatrix) size() int {
	return m.n
}

func (m *adjacencyMatrix) contains(i int32) bool {
	return i >= 0 && int(i) < m.n
}

func (m *adjacencyMatrix) adjacent(i int32) []int32 {
	if !m.contains(i) {
		return nil
	}

	var out []int32
	row := m.cells[int(i)*m.n : int(i)*m.n+m.n]
	for j, v := range row {
		if v != sentinelNone {
			out = append(out, int32(j))
		}
	}

	return out
}

func (m *adjacencyMatrix) edge(from, to int32) error {
	if !m.contains(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !m.contains(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	m.cells[int(from)*m.n+int(to)] = to

	return nil
}

func (m *adjacencyMatrix) bEdge(a, b int32) error {
	if err := m.edge(a, b); err != nil {
		return err
	}

	return m.edge(b, a)
}

func (m *adjacencyMatrix) sizeOf() int {
	return diag.SliceBytes(m.cells, 4)
}
