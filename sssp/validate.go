package sssp

import (
	"fmt"

	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
)

// AssertValid checks a finished solve post hoc: the source's distance must
// be exactly zero, and for every edge (u,v,w) with reached u the closure
// dist[v] <= dist[u] + w must hold. Any violation yields ErrNotConsistent.
// The distance and weight columns must carry the same scalar kind.
func AssertValid(g *pgraph.Graph, source pgraph.NodeID, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: %d of %d nodes", ErrSourceOutOfRange, source, g.NumNodes())
	}
	dcol, err := g.NodeProperty(cfg.DistanceProperty)
	if err != nil {
		return fmt.Errorf("sssp: distance column: %w", err)
	}
	wcol, err := g.EdgeProperty(cfg.WeightProperty)
	if err != nil {
		return fmt.Errorf("sssp: weight column: %w", err)
	}
	if dcol.Kind() != wcol.Kind() {
		return fmt.Errorf("%w: distance column holds %s, weight column %s",
			pgraph.ErrKindMismatch, dcol.Kind(), wcol.Kind())
	}

	switch dcol.Kind() {
	case pgraph.Uint32:
		return assertTyped[uint32](g, source, cfg, dcol, wcol)
	case pgraph.Int32:
		return assertTyped[int32](g, source, cfg, dcol, wcol)
	case pgraph.Uint64:
		return assertTyped[uint64](g, source, cfg, dcol, wcol)
	case pgraph.Int64:
		return assertTyped[int64](g, source, cfg, dcol, wcol)
	case pgraph.Float32:
		return assertTyped[float32](g, source, cfg, dcol, wcol)
	default:
		return assertTyped[float64](g, source, cfg, dcol, wcol)
	}
}

func assertTyped[W par.Scalar](g *pgraph.Graph, source pgraph.NodeID, cfg Options, dcol, wcol *pgraph.Column) error {
	dist, err := pgraph.Data[W](dcol)
	if err != nil {
		return fmt.Errorf("sssp: distance column: %w", err)
	}
	ws, err := pgraph.Data[W](wcol)
	if err != nil {
		return fmt.Errorf("sssp: weight column: %w", err)
	}
	if dist[source] != 0 {
		return fmt.Errorf("%w: source distance is %v, want 0", ErrNotConsistent, dist[source])
	}

	inf := infinity[W]()
	var bad par.LogicalOr
	par.For(g.NumNodes(), func(u int) {
		du := dist[u]
		if du >= inf {
			return // unreached nodes impose no closure constraint
		}
		begin, end := g.OutEdges(pgraph.NodeID(u))
		for e := begin; e < end; e++ {
			if dist[g.EdgeDst(e)] > du+ws[e] {
				bad.Update(true)
			}
		}
	}, par.WithChunkSize(cfg.ChunkSize))
	if bad.Reduce() {
		return fmt.Errorf("%w: an edge admits a shorter path than its destination's distance", ErrNotConsistent)
	}

	return nil
}

// ComputeStatistics summarizes the distances of a finished solve: the
// number of reached nodes, their maximum distance, and their mean.
func ComputeStatistics(g *pgraph.Graph, opts ...Option) (Statistics, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Statistics{}, ErrNilGraph
	}
	dcol, err := g.NodeProperty(cfg.DistanceProperty)
	if err != nil {
		return Statistics{}, fmt.Errorf("sssp: distance column: %w", err)
	}

	switch dcol.Kind() {
	case pgraph.Uint32:
		return statsTyped[uint32](g, cfg, dcol)
	case pgraph.Int32:
		return statsTyped[int32](g, cfg, dcol)
	case pgraph.Uint64:
		return statsTyped[uint64](g, cfg, dcol)
	case pgraph.Int64:
		return statsTyped[int64](g, cfg, dcol)
	case pgraph.Float32:
		return statsTyped[float32](g, cfg, dcol)
	default:
		return statsTyped[float64](g, cfg, dcol)
	}
}

func statsTyped[W par.Scalar](g *pgraph.Graph, cfg Options, dcol *pgraph.Column) (Statistics, error) {
	dist, err := pgraph.Data[W](dcol)
	if err != nil {
		return Statistics{}, fmt.Errorf("sssp: distance column: %w", err)
	}

	inf := infinity[W]()
	var reached par.Counter
	var maxDist par.Max[W]
	var sumDist par.Sum[float64]
	par.For(g.NumNodes(), func(i int) {
		d := dist[i]
		if d < inf {
			reached.Add(1)
			maxDist.Update(d)
			sumDist.Add(float64(d))
		}
	}, par.WithChunkSize(cfg.ChunkSize))

	st := Statistics{
		ReachedNodes: uint64(reached.Reduce()),
		MaxDistance:  float64(maxDist.Reduce()),
	}
	if st.ReachedNodes > 0 {
		st.AverageDistance = sumDist.Reduce() / float64(st.ReachedNodes)
	}

	return st, nil
}
