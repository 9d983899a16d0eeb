package sssp

import (
	"errors"

	"github.com/gravelib/gravel/pgraph"
)

// Sentinel errors returned by the solver entry points.
var (
	// ErrNilGraph indicates a nil *pgraph.Graph was passed.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceOutOfRange indicates the source handle is not a node of the graph.
	ErrSourceOutOfRange = errors.New("sssp: source node out of range")

	// ErrBadDeltaShift indicates a delta-stepping shift outside [0, 63].
	ErrBadDeltaShift = errors.New("sssp: delta shift must be in [0, 63]")

	// ErrBadTileSize indicates a non-positive edge tile size.
	ErrBadTileSize = errors.New("sssp: edge tile size must be positive")

	// ErrBadChunkSize indicates a non-positive scheduling chunk size.
	ErrBadChunkSize = errors.New("sssp: chunk size must be positive")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set.
	ErrUnknownAlgorithm = errors.New("sssp: unknown algorithm")

	// ErrNotConsistent indicates the post-hoc validator found an edge (u,v,w)
	// with dist[v] > dist[u] + w, or a source whose distance is not zero.
	ErrNotConsistent = errors.New("sssp: distances not consistent")
)

// Algorithm selects the scheduling strategy. The set is closed; dispatch
// happens once, at the solver entry, never per relaxation.
type Algorithm uint8

const (
	// Automatic defers the choice to Options.Heuristic at run time.
	Automatic Algorithm = iota

	// DeltaStep is concurrent delta-stepping over a priority-bucket
	// worklist: buckets drain in increasing distance order, requests within
	// a bucket relax in parallel.
	DeltaStep

	// DeltaTile is DeltaStep with a node's out-edges batched into
	// fixed-size contiguous tiles, balancing load on high-degree nodes.
	DeltaTile

	// DeltaStepBarrier is DeltaStep with a full synchronization wave
	// between refills of the same bucket.
	DeltaStepBarrier

	// SerialDelta drains the same buckets single-threaded — the
	// deterministic reference for the delta-stepping discipline.
	SerialDelta

	// SerialDeltaTile is SerialDelta over edge tiles.
	SerialDeltaTile

	// Dijkstra is the classical serial algorithm over a global min-heap
	// with lazy decrease-key; exact, and the correctness baseline.
	Dijkstra

	// DijkstraTile is Dijkstra over edge tiles.
	DijkstraTile

	// Topological is Bellman-Ford-style fixed-point relaxation: every
	// round scans all nodes in parallel and re-relaxes those whose stored
	// distance dropped since they were last seen, until a round changes
	// nothing. No priority structure, potentially many rounds on graphs
	// with long shortest-path chains.
	Topological

	// TopologicalTile is Topological over pre-materialized edge tiles.
	TopologicalTile
)

// String returns the canonical strategy name.
func (a Algorithm) String() string {
	switch a {
	case Automatic:
		return "automatic"
	case DeltaStep:
		return "delta-step"
	case DeltaTile:
		return "delta-tile"
	case DeltaStepBarrier:
		return "delta-step-barrier"
	case SerialDelta:
		return "serial-delta"
	case SerialDeltaTile:
		return "serial-delta-tile"
	case Dijkstra:
		return "dijkstra"
	case DijkstraTile:
		return "dijkstra-tile"
	case Topological:
		return "topological"
	case TopologicalTile:
		return "topological-tile"
	default:
		return "unknown"
	}
}

// Heuristic maps a graph to a concrete Algorithm when Automatic is chosen.
type Heuristic func(g *pgraph.Graph) Algorithm

// Default tunables. DeltaShift and tile/chunk sizes follow the values the
// delta-stepping literature and practice converge on for in-memory graphs.
const (
	// DefaultDeltaShift gives a bucket width of 2^13 distance units.
	DefaultDeltaShift = 13

	// DefaultEdgeTileSize is the contiguous out-edge range one tile covers.
	DefaultEdgeTileSize = 512

	// DefaultChunkSize is the scheduling granularity of parallel loops.
	DefaultChunkSize = 64

	// DefaultWeightProperty names the edge column read as weights.
	DefaultWeightProperty = "weight"

	// DefaultDistanceProperty names the node column distances are written to.
	DefaultDistanceProperty = "distance"
)

// Options configures a solve. Immutable once the algorithm starts; Run
// validates the whole value before any computation begins.
//
//	Algorithm        – scheduling strategy (Automatic resolves via Heuristic).
//	DeltaShift       – bucket width exponent: bucket = floor(dist / 2^shift).
//	EdgeTileSize     – out-edge batch size for the tiled variants.
//	ChunkSize        – items a worker claims per grab in parallel loops.
//	WeightProperty   – edge column holding non-negative weights. Negative
//	                   weights are an unchecked precondition violation.
//	DistanceProperty – node column distances are written to (created or
//	                   reused if the kind matches).
//	Heuristic        – pluggable Automatic policy.
type Options struct {
	Algorithm        Algorithm
	DeltaShift       int
	EdgeTileSize     int
	ChunkSize        int
	WeightProperty   string
	DistanceProperty string
	Heuristic        Heuristic
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithAlgorithm selects the scheduling strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithDeltaShift sets the bucket width to 2^shift distance units.
func WithDeltaShift(shift int) Option {
	return func(o *Options) { o.DeltaShift = shift }
}

// WithEdgeTileSize sets the out-edge batch size of the tiled variants.
func WithEdgeTileSize(n int) Option {
	return func(o *Options) { o.EdgeTileSize = n }
}

// WithChunkSize sets the scheduling granularity of the parallel loops.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.ChunkSize = n }
}

// WithWeightProperty names the edge column read as weights.
func WithWeightProperty(name string) Option {
	return func(o *Options) { o.WeightProperty = name }
}

// WithDistanceProperty names the node column distances are written to.
func WithDistanceProperty(name string) Option {
	return func(o *Options) { o.DistanceProperty = name }
}

// WithHeuristic replaces the Automatic dispatch policy.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns the solver defaults: delta-stepping with a 2^13
// bucket width, 512-edge tiles, 64-item chunks, the "weight" and
// "distance" columns, and the built-in Automatic heuristic.
func DefaultOptions() Options {
	return Options{
		Algorithm:        DeltaStep,
		DeltaShift:       DefaultDeltaShift,
		EdgeTileSize:     DefaultEdgeTileSize,
		ChunkSize:        DefaultChunkSize,
		WeightProperty:   DefaultWeightProperty,
		DistanceProperty: DefaultDistanceProperty,
		Heuristic:        defaultHeuristic,
	}
}

// defaultHeuristic: small graphs go to the exact serial baseline, dense
// graphs to tiled delta-stepping for load balance, everything else to
// plain delta-stepping.
func defaultHeuristic(g *pgraph.Graph) Algorithm {
	n := g.NumNodes()
	if n < 1024 {
		return Dijkstra
	}
	if g.NumEdges()/n >= 16 {
		return DeltaTile
	}

	return DeltaStep
}

// Statistics summarizes a finished solve: how many nodes were reached
// (distance below the infinity sentinel), the maximum reached distance,
// and the mean distance over reached nodes. Derived, read-only.
type Statistics struct {
	ReachedNodes    uint64
	MaxDistance     float64
	AverageDistance float64
}
