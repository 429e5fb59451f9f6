package core

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex index
// outside [0, size).
var ErrVertexNotFound = errors.New("core: vertex not found")

// ErrSelfLoop indicates an edge operation would connect a vertex to
// itself, which invariant 2 forbids.
var ErrSelfLoop = errors.New("core: self-loop not allowed")

// ErrMatrixBudgetExceeded indicates a matrix backend was requested for
// a vertex count whose N²·4-byte footprint exceeds the configured
// budget without interactive confirmation.
var ErrMatrixBudgetExceeded = errors.New("core: matrix backend exceeds memory budget")

// ErrUnknownBackend indicates an invalid-argument: a backend value
// outside {list, matrix}.
var ErrUnknownBackend = errors.New("core: unknown graph backend")
