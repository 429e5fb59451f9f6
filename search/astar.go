package search

import (
	"container/heap"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/road"
	"github.com/arvidsson/roadgraph/trace"
	"github.com/arvidsson/roadgraph/weight"
)

// AStar runs an open-set A* search from source to target using w as
// the edge weight and h as the heuristic. h must be admissible and
// consistent for the result to be optimal; if it is not, the search
// still terminates but may return a suboptimal path.
//
// No visited set is maintained: a vertex may be re-pushed with a
// better g-score any number of times. Older heap entries for the same
// vertex are not skipped; each pop expands the vertex again from its
// current g-score.
//
// Complexity: O((V+E) log V) time in the typical case, same space
// profile as Dijkstra.
func AStar(g *core.Graph, roads []road.Road, vertices []core.Vertex, w, h weight.Func, source, target int32, stopOnFound bool) (*Result, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return nil, err
	}

	n := g.Size()
	prev := newPrev(n)
	gScore := make([]float64, n)
	for i := range gScore {
		gScore[i] = -1
	}

	ledger := trace.New()
	var result Result

	pq := make(astarPQ, 0, n)
	gScore[source] = 0
	heap.Push(&pq, &astarItem{vertex: source, f: h(roads, vertices, source, target, NoPrev)})

	for pq.Len() > 0 {
		result.Counters.Cmp()
		item := heap.Pop(&pq).(*astarItem)

		result.Counters.Cmp()
		if stopOnFound && item.vertex == target {
			break
		}

		ledger.Parent(item.vertex)

		for _, nb := range g.Adjacent(item.vertex) {
			result.Counters.Step()

			tentativeG := gScore[item.vertex] + w(roads, vertices, item.vertex, nb, prev[item.vertex])

			result.Counters.Cmp()
			if gScore[nb] < 0 || tentativeG < gScore[nb] {
				prev[nb] = item.vertex
				gScore[nb] = tentativeG
				result.Counters.Mem()

				f := tentativeG + h(roads, vertices, nb, target, prev[nb])
				ledger.Child(nb)
				heap.Push(&pq, &astarItem{vertex: nb, f: f})
			}
		}
	}

	ledger.Close()

	result.Prev = prev
	result.Trace = ledger
	_, result.Found = Reconstruct(prev, source, target)

	return &result, nil
}

type astarItem struct {
	vertex int32
	f      float64
}

type astarPQ []*astarItem

func (pq astarPQ) Len() int { return len(pq) }

func (pq astarPQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq astarPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *astarPQ) Push(x any) {
	*pq = append(*pq, x.(*astarItem))
}

func (pq *astarPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
