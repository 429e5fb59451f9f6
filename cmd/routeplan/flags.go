package main

import (
	"flag"
	"fmt"

	"github.com/arvidsson/roadgraph/builder"
	"github.com/arvidsson/roadgraph/core"
)

// flags holds the parsed CLI surface. traceRate/routeRate are accepted
// and stored here, but nothing in this command reads them;
// frame-by-frame playback itself is out of scope here.
type flags struct {
	mapPath             string
	start               string
	destination         string
	algo                string
	backend             core.Backend
	bridgeMode          builder.BridgeMode
	routing             string
	customWeights       string
	stopOnFound         bool
	traceRate           int
	routeRate           int
	dumpDiagnosticsJSON bool
	logJSON             bool
}

func parseFlags(args []string) (flags, error) {
	fs := flag.NewFlagSet("routeplan", flag.ContinueOnError)

	mapPath := fs.String("map", "", "path to the newline-delimited GeoJSON map file")
	start := fs.String("start", "", "start coordinate, decimal \"lat,lon\" or DMS")
	destination := fs.String("destination", "", "destination coordinate, decimal \"lat,lon\" or DMS")
	algo := fs.String("algo", "dijkstra", "search algorithm: dijkstra, astar, bfs, dfs")
	structKind := fs.String("struct", "list", "graph backend: list, matrix")
	bridgeMode := fs.String("bridge-mode", "permissive", "overpass junction handling: permissive, suppress")
	routing := fs.String("route", "shortest", "weight kind: shortest, fastest, custom")
	config := fs.String("config", "", "comma/pipe-separated custom weight coefficients (required when --route=custom)")
	stopOnFound := fs.Bool("stop-on-found", true, "terminate the search as soon as the target is reached")
	traceRate := fs.Int("trace-rate", 0, "trace ledger frames consumed per tick (accepted; not used by this command)")
	routeRate := fs.Int("route-rate", 0, "path segments drawn per tick (accepted; not used by this command)")
	dumpJSON := fs.Bool("dump-diagnostics", false, "emit the diagnostics banner as JSON instead of plain text")
	logJSON := fs.Bool("log-json", false, "emit structured JSON logs instead of console-formatted logs")

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}

	if *mapPath == "" {
		return flags{}, fmt.Errorf("--map is required")
	}
	if *start == "" || *destination == "" {
		return flags{}, fmt.Errorf("--start and --destination are required")
	}

	backend, err := parseBackend(*structKind)
	if err != nil {
		return flags{}, err
	}

	bm, err := parseBridgeMode(*bridgeMode)
	if err != nil {
		return flags{}, err
	}

	if *routing == "custom" && *config == "" {
		return flags{}, fmt.Errorf("--config is required when --route=custom")
	}

	return flags{
		mapPath:             *mapPath,
		start:               *start,
		destination:         *destination,
		algo:                *algo,
		backend:             backend,
		bridgeMode:          bm,
		routing:             *routing,
		customWeights:       *config,
		stopOnFound:         *stopOnFound,
		traceRate:           *traceRate,
		routeRate:           *routeRate,
		dumpDiagnosticsJSON: *dumpJSON,
		logJSON:             *logJSON,
	}, nil
}

func parseBackend(s string) (core.Backend, error) {
	switch s {
	case "list":
		return core.BackendList, nil
	case "matrix":
		return core.BackendMatrix, nil
	default:
		return 0, fmt.Errorf("unknown --struct %q", s)
	}
}

func parseBridgeMode(s string) (builder.BridgeMode, error) {
	switch s {
	case "permissive":
		return builder.BridgeModePermissive, nil
	case "suppress":
		return builder.BridgeModeSuppressMismatch, nil
	default:
		return 0, fmt.Errorf("unknown --bridge-mode %q", s)
	}
}
