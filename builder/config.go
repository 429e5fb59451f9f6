package builder

import "github.com/arvidsson/roadgraph/core"

// BridgeMode controls how the inter-road junction merge pass treats
// coordinate coincidences where exactly one of the two roads has
// bridge=true. This is the open question from the graph-builder
// design: the original behaviour connects regardless, which can
// falsely bridge overpasses that cross without meeting.
type BridgeMode uint8

const (
	// BridgeModePermissive reproduces the original behaviour: connect
	// regardless of the bridge flag. Default.
	BridgeModePermissive BridgeMode = iota
	// BridgeModeSuppressMismatch skips the junction edge when exactly
	// one of the two roads at a coincident point has bridge=true.
	BridgeModeSuppressMismatch
)

// Option configures Build.
type Option func(*config)

type config struct {
	backend       core.Backend
	bridgeMode    BridgeMode
	matrixBudget  int64
	confirmMatrix func(vertexCount int, bytes int64) bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		backend:       core.BackendList,
		bridgeMode:    BridgeModePermissive,
		matrixBudget:  0, // 0 means "use core's default"
		confirmMatrix: nil,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithBackend selects the adjacency representation of the built graph.
func WithBackend(b core.Backend) Option {
	return func(cfg *config) { cfg.backend = b }
}

// WithBridgeMode selects junction-merge behaviour at bridge/non-bridge
// coincidences. See BridgeMode.
func WithBridgeMode(m BridgeMode) Option {
	return func(cfg *config) { cfg.bridgeMode = m }
}

// WithMatrixBudget forwards a matrix memory budget override to core.NewGraph.
func WithMatrixBudget(bytes int64) Option {
	return func(cfg *config) { cfg.matrixBudget = bytes }
}

// WithMatrixConfirm forwards an interactive confirmation callback to
// core.NewGraph for the matrix backend's resource-warning.
func WithMatrixConfirm(confirm func(vertexCount int, bytes int64) bool) Option {
	return func(cfg *config) { cfg.confirmMatrix = confirm }
}
