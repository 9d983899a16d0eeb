package sssp

import (
	"fmt"
	"math"

	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/stats"
)

// Run solves shortest paths from source and writes per-node distances into
// Options.DistanceProperty. The weight column's scalar kind is inspected
// once, here, and dispatched to a monomorphized solve; callers never name
// the numeric type. Unreached nodes keep the infinity sentinel
// (max/2 for integral weights, MaxFloat/2 for floating weights).
func Run(g *pgraph.Graph, source pgraph.NodeID, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, &cfg); err != nil {
		return err
	}

	// Resolve Automatic before the typed dispatch so the strategy switch
	// below deals only in concrete algorithms.
	if cfg.Algorithm == Automatic {
		cfg.Algorithm = cfg.Heuristic(g)
	}

	wcol, err := g.EdgeProperty(cfg.WeightProperty)
	if err != nil {
		return fmt.Errorf("sssp: weight column: %w", err)
	}

	switch wcol.Kind() {
	case pgraph.Uint32:
		return runTyped[uint32](g, source, cfg, wcol)
	case pgraph.Int32:
		return runTyped[int32](g, source, cfg, wcol)
	case pgraph.Uint64:
		return runTyped[uint64](g, source, cfg, wcol)
	case pgraph.Int64:
		return runTyped[int64](g, source, cfg, wcol)
	case pgraph.Float32:
		return runTyped[float32](g, source, cfg, wcol)
	default:
		return runTyped[float64](g, source, cfg, wcol)
	}
}

// validate fails fast on malformed input before any state is touched.
func validate(g *pgraph.Graph, source pgraph.NodeID, cfg *Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: %d of %d nodes", ErrSourceOutOfRange, source, g.NumNodes())
	}
	if cfg.DeltaShift < 0 || cfg.DeltaShift > 63 {
		return fmt.Errorf("%w: %d", ErrBadDeltaShift, cfg.DeltaShift)
	}
	if cfg.EdgeTileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadTileSize, cfg.EdgeTileSize)
	}
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadChunkSize, cfg.ChunkSize)
	}

	return nil
}

// runTyped is the monomorphized solve for weight type W.
func runTyped[W par.Scalar](g *pgraph.Graph, source pgraph.NodeID, cfg Options, wcol *pgraph.Column) error {
	ws, err := pgraph.Data[W](wcol)
	if err != nil {
		return fmt.Errorf("sssp: weight column: %w", err)
	}
	if cfg.Algorithm == Automatic || cfg.Algorithm > TopologicalTile {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	// Claim the distance column up front: a kind conflict with an existing
	// column fails here, before any relaxation work starts.
	dcol, err := g.EnsureNodeProperty(cfg.DistanceProperty, pgraph.KindOf[W]())
	if err != nil {
		return fmt.Errorf("sssp: distance column: %w", err)
	}
	out, err := pgraph.Data[W](dcol)
	if err != nil {
		return fmt.Errorf("sssp: distance column: %w", err)
	}

	s := &solver[W]{g: g, opts: cfg, ws: ws, out: out, inf: infinity[W]()}
	n := g.NumNodes()
	s.dist = make([]par.AtomicScalar[W], n)
	par.For(n, func(i int) { s.dist[i].Store(s.inf) }, par.WithChunkSize(cfg.ChunkSize))
	s.dist[source].Store(0)

	timer := stats.NewTimer("SSSP")
	timer.Start()
	switch cfg.Algorithm {
	case DeltaStep:
		s.deltaStep(source, false, false)
	case DeltaTile:
		s.deltaStep(source, true, false)
	case DeltaStepBarrier:
		s.deltaStep(source, false, true)
	case SerialDelta:
		s.serialDelta(source, false)
	case SerialDeltaTile:
		s.serialDelta(source, true)
	case Dijkstra:
		s.dijkstra(source, false)
	case DijkstraTile:
		s.dijkstra(source, true)
	case Topological:
		s.topological()
	case TopologicalTile:
		s.topologicalTile()
	}
	timer.Stop()

	s.extract()

	return nil
}

// solver holds the mutable state of one typed solve.
type solver[W par.Scalar] struct {
	g    *pgraph.Graph
	opts Options
	ws   []W                   // edge weights, read-only during the solve
	out  []W                   // distance column claimed before the solve
	dist []par.AtomicScalar[W] // per-node best distance, shared by all workers
	inf  W
}

// request pairs a source node with the distance recorded when the request
// was created. It becomes stale the moment the node's distance improves
// past the recorded value, and is then dropped without side effects.
type request[W par.Scalar] struct {
	src  pgraph.NodeID
	dist W
}

// edgeTile is a request over a contiguous sub-range of a node's out-edges.
// dist remembers the source distance the tile last saw; the tile is
// reprocessed only when that distance has since improved.
type edgeTile[W par.Scalar] struct {
	src      pgraph.NodeID
	dist     W
	beg, end int
}

// relaxRange applies the relaxation rule to the edge handles [beg, end)
// with source distance d. push (nil in the topological variants) receives
// every strictly improved destination together with its new distance.
func (s *solver[W]) relaxRange(d W, beg, end int, push func(pgraph.NodeID, W)) {
	for e := beg; e < end; e++ {
		dst := s.g.EdgeDst(e)
		nd := d + s.ws[e]
		if old := s.dist[dst].Min(nd); nd < old && push != nil {
			push(dst, nd)
		}
	}
}

// forEachTile splits u's out-edges into EdgeTileSize-sized tiles carrying
// source distance d. Zero-degree nodes yield no tiles.
func (s *solver[W]) forEachTile(u pgraph.NodeID, d W, emit func(edgeTile[W])) {
	begin, end := s.g.OutEdges(u)
	for b := begin; b < end; b += s.opts.EdgeTileSize {
		emit(edgeTile[W]{src: u, dist: d, beg: b, end: min(b+s.opts.EdgeTileSize, end)})
	}
}

// bucketKey maps a distance to its delta-stepping bucket,
// floor(dist / 2^shift). Keys only steer scheduling; correctness never
// depends on the mapping.
func (s *solver[W]) bucketKey(d W) uint64 {
	return uint64(float64(d)) >> uint(s.opts.DeltaShift)
}

// extract copies final distances into the column claimed at solver entry.
func (s *solver[W]) extract() {
	par.For(s.g.NumNodes(), func(i int) { s.out[i] = s.dist[i].Load() },
		par.WithChunkSize(s.opts.ChunkSize))
}

// infinity returns the unreachable sentinel for W: half the maximum value,
// so a sentinel plus any edge weight cannot overflow during relaxation.
func infinity[W par.Scalar]() W {
	var zero W
	switch any(zero).(type) {
	case uint32:
		return any(uint32(math.MaxUint32 / 2)).(W)
	case int32:
		return any(int32(math.MaxInt32 / 2)).(W)
	case uint64:
		return any(uint64(math.MaxUint64 / 2)).(W)
	case int64:
		return any(int64(math.MaxInt64 / 2)).(W)
	case float32:
		return any(float32(math.MaxFloat32 / 2)).(W)
	default:
		return any(math.MaxFloat64 / 2).(W)
	}
}
