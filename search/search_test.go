package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsson/roadgraph/builder"
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/road"
	"github.com/arvidsson/roadgraph/search"
	"github.com/arvidsson/roadgraph/weight"
)

func pts(coords ...[2]float32) []road.Point {
	out := make([]road.Point, len(coords))
	for i, c := range coords {
		out[i] = road.Point{Lon: c[0], Lat: c[1]}
	}

	return out
}

// S1 — straight oneway road, all algorithms return [0,1,2,3].
func TestS1StraightRoad(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{0.001, 0}, [2]float32{0.002, 0}, [2]float32{0.003, 0})},
	}
	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)

	dijk, err := search.Dijkstra(g, roads, vertices, weight.Shortest, 0, 3, true)
	require.NoError(t, err)
	path, found := search.Reconstruct(dijk.Prev, 0, 3)
	require.True(t, found)
	assert.Equal(t, []int32{0, 1, 2, 3}, path)

	bfs, err := search.BFS(g, 0, 3, true)
	require.NoError(t, err)
	path, found = search.Reconstruct(bfs.Prev, 0, 3)
	require.True(t, found)
	assert.Equal(t, []int32{0, 1, 2, 3}, path)

	astar, err := search.AStar(g, roads, vertices, weight.Shortest, weight.Heuristic, 0, 3, true)
	require.NoError(t, err)
	path, found = search.Reconstruct(astar.Prev, 0, 3)
	require.True(t, found)
	assert.Equal(t, []int32{0, 1, 2, 3}, path)

	dfs, err := search.DFS(g, 0, 3, true)
	require.NoError(t, err)
	path, found = search.Reconstruct(dfs.Prev, 0, 3)
	require.True(t, found)
	assert.Equal(t, []int32{0, 1, 2, 3}, path)
}

// S5 — unreachable target: disjoint components, A* with
// stop_on_found=false returns no-route and a truncated chain.
func TestS5Unreachable(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
		{ID: 1, Oneway: true, Points: pts([2]float32{50, 50}, [2]float32{51, 50})},
	}
	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)

	result, err := search.AStar(g, roads, vertices, weight.Shortest, weight.Heuristic, 0, 3, false)
	require.NoError(t, err)
	assert.False(t, result.Found)

	path, found := search.Reconstruct(result.Prev, 0, 3)
	assert.False(t, found)
	assert.NotEmpty(t, path)
}

func TestPrevSourceIsSentinel(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
	}
	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)

	result, err := search.BFS(g, 0, 1, true)
	require.NoError(t, err)
	assert.Equal(t, search.NoPrev, result.Prev[0])
}

func TestBFSMinimumEdgeCount(t *testing.T) {
	t.Parallel()

	// diamond: 0->1->3 and 0->2->3, both oneway so edges only forward.
	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, 1})},
		{ID: 1, Oneway: true, Points: pts([2]float32{1, 1}, [2]float32{2, 2})},
		{ID: 2, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, -1})},
		{ID: 3, Oneway: true, Points: pts([2]float32{1, -1}, [2]float32{2, 2})},
	}
	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)
	_ = vertices

	result, err := search.BFS(g, 0, 5, true)
	require.NoError(t, err)
	path, found := search.Reconstruct(result.Prev, 0, 5)
	require.True(t, found)
	assert.Len(t, path, 3)
}

func TestDijkstraAStarAgree(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
		{ID: 1, Points: pts([2]float32{1, 0}, [2]float32{1, 1})},
		{ID: 2, Points: pts([2]float32{0, 0}, [2]float32{0, 1}, [2]float32{1, 1})},
	}
	g, vertices, err := builder.Build(roads)
	require.NoError(t, err)

	dijk, err := search.Dijkstra(g, roads, vertices, weight.Shortest, 0, 3, false)
	require.NoError(t, err)

	astar, err := search.AStar(g, roads, vertices, weight.Shortest, weight.Heuristic, 0, 3, false)
	require.NoError(t, err)

	dijkPath, _ := search.Reconstruct(dijk.Prev, 0, 3)
	astarPath, _ := search.Reconstruct(astar.Prev, 0, 3)

	dijkCost := pathCost(roads, vertices, weight.Shortest, dijkPath)
	astarCost := pathCost(roads, vertices, weight.Shortest, astarPath)

	assert.InDelta(t, dijkCost, astarCost, 1e-6)
}

func pathCost(roads []road.Road, vertices []core.Vertex, w weight.Func, path []int32) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		prev := search.NoPrev
		if i > 1 {
			prev = path[i-2]
		}
		total += w(roads, vertices, path[i-1], path[i], prev)
	}

	return total
}

func TestSourceNotFound(t *testing.T) {
	t.Parallel()

	roads := []road.Road{
		{ID: 0, Oneway: true, Points: pts([2]float32{0, 0}, [2]float32{1, 0})},
	}
	g, _, err := builder.Build(roads)
	require.NoError(t, err)

	_, err = search.BFS(g, 99, 0, true)
	require.ErrorIs(t, err, search.ErrSourceNotFound)
}
