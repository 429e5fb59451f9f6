// Command routeplan is the CLI wrapper around the roadgraph core: it
// loads a map, builds a graph, runs a search between two endpoints,
// and prints the resulting path plus a diagnostics banner. Argument
// parsing, logging, and process exit codes live here; everything else
// delegates to the core packages.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	goccyjson "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/arvidsson/roadgraph/builder"
	"github.com/arvidsson/roadgraph/core"
	"github.com/arvidsson/roadgraph/geo"
	"github.com/arvidsson/roadgraph/road"
	"github.com/arvidsson/roadgraph/search"
	"github.com/arvidsson/roadgraph/weight"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if cfg.logJSON {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if err != nil {
		logger.Fatal().Err(err).Msg("invalid arguments")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("route planning failed")
	}
}

func run(cfg flags, logger zerolog.Logger) error {
	logger.Info().Str("map", cfg.mapPath).Msg("loading map")

	roads, err := road.LoadOrParse(cfg.mapPath)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	logger.Info().Int("roads", len(roads)).Int("bytes", road.SizeOf(roads)).Msg("map loaded")

	g, vertices, err := builder.Build(roads,
		builder.WithBackend(cfg.backend),
		builder.WithBridgeMode(cfg.bridgeMode),
		builder.WithMatrixConfirm(confirmMatrixBudget(logger)),
	)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	logger.Info().Int("vertices", g.Size()).Int("bytes", g.SizeOf()).Msg("graph built")

	bounds := builder.Bounds(vertices)
	logger.Info().
		Float64("min_lon", bounds.MinLon).Float64("min_lat", bounds.MinLat).
		Float64("max_lon", bounds.MaxLon).Float64("max_lat", bounds.MaxLat).
		Msg("graph extent (initial viewport)")

	source, err := nearestVertex(g, vertices, cfg.start)
	if err != nil {
		return fmt.Errorf("resolve start: %w", err)
	}
	target, err := nearestVertex(g, vertices, cfg.destination)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	w, h, err := resolveWeight(cfg)
	if err != nil {
		return fmt.Errorf("resolve weight: %w", err)
	}

	result, err := runSearch(cfg, g, roads, vertices, w, h, source, target)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	path, found := search.Reconstruct(result.Prev, source, target)
	if !found {
		logger.Warn().Msg("no route found; reporting truncated path")
	}

	printPath(path, vertices)
	printDiagnostics(cfg, result, g)

	return nil
}

// nearestVertex parses an endpoint string and snaps it to the nearest
// graph vertex by haversine distance.
func nearestVertex(g *core.Graph, vertices []core.Vertex, raw string) (int32, error) {
	p, err := geo.Parse(raw, false)
	if err != nil {
		return 0, err
	}

	best := int32(-1)
	bestDist := -1.0

	for i := 0; i < g.Size(); i++ {
		v, err := g.Vertex(int32(i))
		if err != nil {
			return 0, err
		}

		d := geo.Haversine(p, v.Loc)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = int32(i)
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("no vertices in graph")
	}

	return best, nil
}

func resolveWeight(cfg flags) (w, h weight.Func, err error) {
	switch cfg.routing {
	case "shortest":
		return weight.Shortest, weight.Heuristic, nil
	case "fastest":
		return weight.Fastest, weight.Heuristic, nil
	case "custom":
		coeffs, err := weight.ParseCoefficients(cfg.customWeights)
		if err != nil {
			return nil, nil, err
		}

		return coeffs.Custom(), weight.Heuristic, nil
	default:
		return nil, nil, fmt.Errorf("unknown routing kind %q", cfg.routing)
	}
}

func runSearch(cfg flags, g *core.Graph, roads []road.Road, vertices []core.Vertex, w, h weight.Func, source, target int32) (*search.Result, error) {
	switch cfg.algo {
	case "dijkstra":
		return search.Dijkstra(g, roads, vertices, w, source, target, cfg.stopOnFound)
	case "astar":
		return search.AStar(g, roads, vertices, w, h, source, target, cfg.stopOnFound)
	case "bfs":
		return search.BFS(g, source, target, cfg.stopOnFound)
	case "dfs":
		return search.DFS(g, source, target, cfg.stopOnFound)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.algo)
	}
}

func printPath(path []int32, vertices []core.Vertex) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	parts := make([]string, len(path))
	for i, idx := range path {
		v := vertices[idx]
		parts[i] = fmt.Sprintf("%d(%.5f,%.5f)", idx, v.Loc.Lat, v.Loc.Lon)
	}

	fmt.Fprintln(w, strings.Join(parts, " -> "))
}

type diagnosticsBanner struct {
	Steps       int64 `json:"steps"`
	Memops      int64 `json:"memops"`
	Comparisons int64 `json:"comparisons"`
	GraphBytes  int   `json:"graph_bytes"`
	TraceBytes  int   `json:"trace_bytes"`
}

func printDiagnostics(cfg flags, result *search.Result, g *core.Graph) {
	banner := diagnosticsBanner{
		Steps:       result.Counters.Steps,
		Memops:      result.Counters.Memops,
		Comparisons: result.Counters.Comparisons,
		GraphBytes:  g.SizeOf(),
		TraceBytes:  result.Trace.SizeOf(),
	}

	if cfg.dumpDiagnosticsJSON {
		data, _ := goccyjson.MarshalIndent(banner, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))

		return
	}

	fmt.Fprintf(os.Stderr, "steps=%d memops=%d comparisons=%d graph_bytes=%d trace_bytes=%d\n",
		banner.Steps, banner.Memops, banner.Comparisons, banner.GraphBytes, banner.TraceBytes)
}

// confirmMatrixBudget implements the interactive resource-warning
// confirmation for the matrix backend: it prompts on stderr and reads
// a yes/no answer from stdin.
func confirmMatrixBudget(logger zerolog.Logger) func(vertexCount int, bytes int64) bool {
	return func(vertexCount int, bytes int64) bool {
		logger.Warn().Int("vertices", vertexCount).Int64("bytes", bytes).
			Msg("matrix backend exceeds memory budget; confirm to continue")

		fmt.Fprintf(os.Stderr, "matrix backend needs ~%d MB for %d vertices, continue? [y/N] ", bytes/(1<<20), vertexCount)

		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))

		return answer == "y" || answer == "yes"
	}
}
