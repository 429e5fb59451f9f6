package search

import (
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/trace"
)

// DFS runs a LIFO-stack depth-first traversal from source, marking
// vertices visited on push so each is discovered at most once.
// stopOnFound short-circuits on pop of the target.
//
// Complexity: O(V+E) time, O(V) space.
func DFS(g *core.Graph, source, target int32, stopOnFound bool) (*Result, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.Size()
	prev := newPrev(n)
	visited := make([]bool, n)

	ledger := trace.New()
	var result Result

	stack := []int32{source}
	visited[source] = true
	result.Counters.Mem()

	for len(stack) > 0 {
		result.Counters.Cmp()
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

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
			stack = append(stack, nb)
		}
	}

	ledger.Close()

	result.Prev = prev
	result.Trace = ledger
	_, result.Found = Reconstruct(prev, source, target)

	return &result, nil
}
