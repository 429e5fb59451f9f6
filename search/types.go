package search

import (
	"fmt"

	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/diag"
	"github.com/arvidsson/roadgraph/trace"
)

// NoPrev marks a vertex with no predecessor: the source, or a vertex
// the search never reached.
const NoPrev int32 = -1

// Result is what every algorithm in this package returns: the
// predecessor array produced by the run, whether the target was
// reached, the trace ledger recorded while expanding, and the
// diagnostic counters for the run.
type Result struct {
	Prev     []int32
	Found    bool
	Trace    *trace.Ledger
	Counters diag.Counters
}

// Reconstruct follows prev from target back to source. If it runs out
// of predecessors before reaching source, the target is unreachable:
// it returns the partial chain accumulated so far and found=false
// (the no-route signal), per the path-reconstruction contract.
func Reconstruct(prev []int32, source, target int32) (path []int32, found bool) {
	var reversed []int32

	cur := target
	for cur != NoPrev {
		reversed = append(reversed, cur)
		if cur == source {
			found = true

			break
		}
		cur = prev[cur]
	}

	path = make([]int32, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path, found
}

func newPrev(n int) []int32 {
	prev := make([]int32, n)
	for i := range prev {
		prev[i] = NoPrev
	}

	return prev
}

func validateEndpoints(g *core.Graph, source, target int32) error {
	if !g.Contains(source) {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.Contains(target) {
		return fmt.Errorf("%w: %d", ErrTargetNotFound, target)
	}

	return nil
}
