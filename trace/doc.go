// Package trace implements the append-only trace ledger a search
// records while expanding: a flat buffer of
// (parent, child_1, child_2, ..., -1) segments, and a cursor that lets
// a consumer (e.g. an animation) replay it frame-by-frame, tolerating
// the producer having already finished.
package trace
