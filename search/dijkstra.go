package search

import (
	"container/heap"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/road"
	"github.com/arvidsson/roadgraph/trace"
	"github.com/arvidsson/roadgraph/weight"
)

// Dijkstra runs a min-heap shortest-path search from source to target
// using w as the edge weight function.
//
// stopOnFound, if true, terminates at pop-time as soon as target is
// popped off the heap — the hardened fix recommended over the weaker
// push-time termination the original implementation used, since
// pop-time termination is the point at which target's distance is
// actually finalized.
//
// Complexity: O((V+E) log V) time, O(V+E) space (lazy decrease-key:
// stale heap entries are pushed rather than updated in place, and
// skipped on pop).
func Dijkstra(g *core.Graph, roads []road.Road, vertices []core.Vertex, w weight.Func, source, target int32, stopOnFound bool) (*Result, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.Size()
	prev := newPrev(n)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = -1
	}
	visited := make([]bool, n)

	ledger := trace.New()
	var result Result

	pq := make(dijkstraPQ, 0, n)
	heap.Push(&pq, &dijkstraItem{vertex: source, dist: 0})
	dist[source] = 0

	for pq.Len() > 0 {
		result.Counters.Cmp()
		item := heap.Pop(&pq).(*dijkstraItem)

		if visited[item.vertex] {
			continue
		}
		visited[item.vertex] = true
		result.Counters.Mem()

		if stopOnFound && item.vertex == target {
			break
		}

		ledger.Parent(item.vertex)

		for _, nb := range g.Adjacent(item.vertex) {
			result.Counters.Step()

			if visited[nb] {
				continue
			}

			cost := w(roads, vertices, item.vertex, nb, prev[item.vertex])
			newDist := dist[item.vertex] + cost

			result.Counters.Cmp()
			if dist[nb] < 0 || newDist < dist[nb] {
				dist[nb] = newDist
				prev[nb] = item.vertex
				result.Counters.Mem()

				ledger.Child(nb)
				heap.Push(&pq, &dijkstraItem{vertex: nb, dist: newDist})
			}
		}
	}

	ledger.Close()

	result.Prev = prev
	result.Trace = ledger
	_, result.Found = Reconstruct(prev, source, target)

	return &result, nil
}

type dijkstraItem struct {
	vertex int32
	dist   float64
}

type dijkstraPQ []*dijkstraItem

func (pq dijkstraPQ) Len() int { return len(pq) }

func (pq dijkstraPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq dijkstraPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *dijkstraPQ) Push(x any) {
	*pq = append(*pq, x.(*dijkstraItem))
}

func (pq *dijkstraPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
