package pagerank

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gravelib/gravel/inout"
	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/stats"
)

// Run computes PageRank over g and writes the final ranks into the
// configured float64 node column, creating it if absent. It returns the
// number of rounds the chosen strategy executed.
//
// Both strategies pull: each node aggregates contributions from its
// predecessors through an in-edge view of the graph. The default view
// materializes a transpose; pass WithViewMode(inout.Symmetric) to alias
// the forward edges when the input is symmetric.
func Run(g *pgraph.Graph, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cfg); err != nil {
		return 0, err
	}
	n := g.NumNodes()
	if n == 0 {
		return 0, nil
	}

	var (
		view *inout.View
		err  error
	)
	if cfg.ViewMode == inout.Symmetric {
		view, err = inout.NewSymmetric(g)
	} else {
		view, err = inout.NewAsymmetric(g)
	}
	if err != nil {
		return 0, fmt.Errorf("pagerank: building in-edge view: %w", err)
	}

	e := engine{view: view, cfg: cfg, n: n}
	e.computeOutDeg()

	timer := stats.NewTimer("PageRank")
	timer.Start()
	var iterations int
	switch cfg.Strategy {
	case Topological:
		iterations = e.runTopological()
	default:
		iterations = e.runResidual()
	}
	timer.Stop()
	stats.ReportSingle("PageRank", "Iterations", iterations)

	if err := e.extract(g); err != nil {
		return iterations, err
	}

	return iterations, nil
}

// validate fail-fasts on malformed inputs before any allocation.
func validate(g *pgraph.Graph, cfg Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 || math.IsNaN(cfg.Alpha) {
		return fmt.Errorf("%w: got %v", ErrBadAlpha, cfg.Alpha)
	}
	if cfg.Tolerance <= 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("%w: got %v", ErrBadTolerance, cfg.Tolerance)
	}
	if cfg.MaxIterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIter, cfg.MaxIterations)
	}

	return nil
}

// engine carries the per-run state shared by both strategies.
type engine struct {
	view *inout.View
	cfg  Options
	n    int

	rank     []float64
	residual []float64
	delta    []float64
	outDeg   []int64
}

// computeOutDeg tallies, for every node, how many successors it feeds in
// the orientation the pull loops read. Each node walks its in-edges and
// atomically credits the predecessor, so the tally parallelizes over the
// same adjacency the rank loops traverse.
func (e *engine) computeOutDeg() {
	e.outDeg = make([]int64, e.n)
	par.For(e.n, func(i int) {
		for it := e.view.InEdges(pgraph.NodeID(i)); !it.Done(); it.Next() {
			atomic.AddInt64(&e.outDeg[e.view.InEdgeSrc(it)], 1)
		}
	}, par.WithChunkSize(e.cfg.ChunkSize))
}

// runTopological runs synchronous rounds of the full pull recurrence
// rank = α·sum + (1-α)/N, reading whatever neighbor values are current
// (asynchronous within a round) and stopping when the accumulated rank
// movement of a round falls to the tolerance.
func (e *engine) runTopological() int {
	// Ranks are read across task boundaries mid-round (a node may observe a
	// neighbor's fresh or stale value, either is acceptable), so the cells
	// are atomic.
	ranks := make([]par.AtomicScalar[float64], e.n)
	initial := 1 / float64(e.n)
	par.For(e.n, func(i int) { ranks[i].Store(initial) }, par.WithChunkSize(e.cfg.ChunkSize))

	base := (1 - e.cfg.Alpha) / float64(e.n)
	var diff par.Sum[float64]
	iteration := 0
	for {
		par.For(e.n, func(i int) {
			sum := 0.0
			for it := e.view.InEdges(pgraph.NodeID(i)); !it.Done(); it.Next() {
				p := e.view.InEdgeSrc(it)
				sum += ranks[p].Load() / float64(e.outDeg[p])
			}
			next := e.cfg.Alpha*sum + base
			diff.Add(math.Abs(next - ranks[i].Load()))
			ranks[i].Store(next)
		}, par.WithChunkSize(e.cfg.ChunkSize))

		iteration++
		if diff.Reduce() <= e.cfg.Tolerance || iteration >= e.cfg.MaxIterations {
			break
		}
		diff.Reset()
	}

	e.rank = make([]float64, e.n)
	par.For(e.n, func(i int) { e.rank[i] = ranks[i].Load() }, par.WithChunkSize(e.cfg.ChunkSize))

	return iteration
}

// runResidual propagates only the rank still owed to each node. Phase 1
// folds super-tolerance residual into rank and publishes the matching
// per-successor delta; phase 2 overwrites each node's residual with the
// sum of its predecessors' published deltas. A node with no successors
// publishes nothing, so its inbound mass leaves the system. Stops when a
// round activates no node.
func (e *engine) runResidual() int {
	e.rank = make([]float64, e.n)
	e.residual = make([]float64, e.n)
	e.delta = make([]float64, e.n)

	seed := e.cfg.InitialResidual
	if seed == 0 {
		seed = (1 - e.cfg.Alpha) / float64(e.n)
	}
	par.For(e.n, func(i int) { e.residual[i] = seed }, par.WithChunkSize(e.cfg.ChunkSize))

	var activated par.Counter
	iteration := 0
	for {
		par.For(e.n, func(i int) {
			e.delta[i] = 0
			if e.residual[i] > e.cfg.Tolerance {
				owed := e.residual[i]
				e.residual[i] = 0
				e.rank[i] += owed
				if e.outDeg[i] > 0 {
					e.delta[i] = owed * e.cfg.Alpha / float64(e.outDeg[i])
					activated.Add(1)
				}
			}
		}, par.WithChunkSize(e.cfg.ChunkSize))

		par.For(e.n, func(i int) {
			sum := 0.0
			for it := e.view.InEdges(pgraph.NodeID(i)); !it.Done(); it.Next() {
				if d := e.delta[e.view.InEdgeSrc(it)]; d > 0 {
					sum += d
				}
			}
			if sum > 0 {
				e.residual[i] = sum
			}
		}, par.WithChunkSize(e.cfg.ChunkSize))

		iteration++
		if iteration >= e.cfg.MaxIterations || activated.Reduce() == 0 {
			break
		}
		activated.Reset()
	}

	return iteration
}

// extract writes the computed ranks into the configured node column.
func (e *engine) extract(g *pgraph.Graph) error {
	col, err := g.EnsureNodeProperty(e.cfg.RankProperty, pgraph.Float64)
	if err != nil {
		return fmt.Errorf("pagerank: rank column: %w", err)
	}
	out, err := pgraph.Data[float64](col)
	if err != nil {
		return fmt.Errorf("pagerank: rank column: %w", err)
	}
	par.For(e.n, func(i int) { out[i] = e.rank[i] }, par.WithChunkSize(e.cfg.ChunkSize))

	return nil
}

// ComputeStatistics summarizes the ranks of a finished solve: the extreme
// and mean values and the total rank mass left in the graph.
func ComputeStatistics(g *pgraph.Graph, opts ...Option) (Statistics, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Statistics{}, ErrNilGraph
	}
	col, err := g.NodeProperty(cfg.RankProperty)
	if err != nil {
		return Statistics{}, fmt.Errorf("pagerank: rank column: %w", err)
	}
	ranks, err := pgraph.Data[float64](col)
	if err != nil {
		return Statistics{}, fmt.Errorf("pagerank: rank column: %w", err)
	}
	n := g.NumNodes()
	if n == 0 {
		return Statistics{}, nil
	}

	var minRank par.AtomicScalar[float64]
	minRank.Store(math.Inf(1))
	var maxRank par.Max[float64]
	var mass par.Sum[float64]
	par.For(n, func(i int) {
		r := ranks[i]
		minRank.Min(r)
		maxRank.Update(r)
		mass.Add(r)
	}, par.WithChunkSize(cfg.ChunkSize))

	total := mass.Reduce()
	st := Statistics{
		MinRank:     minRank.Load(),
		MaxRank:     maxRank.Reduce(),
		AverageRank: total / float64(n),
		TotalMass:   total,
	}
	stats.ReportSingle("PageRank", "MaxRank", st.MaxRank)

	return st, nil
}
