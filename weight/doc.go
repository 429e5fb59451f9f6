// Package weight implements the edge-cost functions consumed by
// search: Shortest, Heuristic (A*'s admissible lower bound), Fastest,
// and a user-tunable Custom linear combination.
//
// Every function shares the Func signature func(roads []road.Road,
// vertices []core.Vertex, from, to, prev int32) float64 and is passed
// to search as a plain function value rather than through an interface, since
// the weight function is the dominant cost centre in the search inner
// loop (§9's "virtual dispatch in inner loops" design note).
package weight
