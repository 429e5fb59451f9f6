package road

import "github.com/arvidsson/roadgraph/diag"

// pointBytes is the inline footprint of a Point: two float32s.
const pointBytes = 8

// roadFixedBytes estimates a Road's inline footprint excluding its
// variable-length Points/Name/Ref payloads: scalar fields plus two
// slice/string headers.
const roadFixedBytes = 64

// SizeOf estimates the total byte footprint of roads, including the
// variable-length Points/Name/Ref payloads and slice capacity overhead.
func SizeOf(roads []Road) int {
	total := diag.SliceBytes(roads, roadFixedBytes)

	for _, r := range roads {
		total += diag.SliceBytes(r.Points, pointBytes)
		total += diag.StringBytes(r.Name)
		total += diag.StringBytes(r.Ref)
	}

	return total
}
