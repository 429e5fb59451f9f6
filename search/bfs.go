package search

import (
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/trace"
)

// BFS runs a FIFO-queue breadth-first traversal from source, marking
// vertices visited on enqueue so each is discovered at most once.
// stopOnFound short-circuits on dequeue of the target. Returns a path
// with the minimum edge count when the target is reachable.
//
// Complexity: O(V+E) time, O(V) space.
func BFS(g *core.Graph, source, target int32, stopOnFound bool) (*Result, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.Size()
	prev := newPrev(n)
	visited := make([]bool, n)

	ledger := trace.New()
	var result Result

	queue := []int32{source}
	visited[source] = true
	result.Counters.Mem()

	for len(queue) > 0 {
		result.Counters.Cmp()
		cur := queue[0]
		queue = queue[1:]

		if stopOnFound && cur == target {
			break
		}

		ledger.Parent(cur)

		for _, nb := range g.Adjacent(cur) {
			result.Counters.Step()

			result.Counters.Cmp()
			if visited[nb] {
				continue
			}

			visited[nb] = true
			prev[nb] = cur
			result.Counters.Mem()

			ledger.Child(nb)
			queue = append(queue, nb)
		}
	}

	ledger.Close()

	result.Prev = prev
	result.Trace = ledger
	_, result.Found = Reconstruct(prev, source, target)

	return &result, nil
}
