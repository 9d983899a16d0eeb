package pagerank

import (
	"errors"

	"github.com/gravelib/gravel/inout"
)

// Sentinel errors returned by the solver entry points.
var (
	// ErrNilGraph indicates a nil *pgraph.Graph was passed.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrBadAlpha indicates a damping factor outside the open interval (0, 1).
	ErrBadAlpha = errors.New("pagerank: alpha must be in (0, 1)")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("pagerank: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("pagerank: max iterations must be positive")
)

// Strategy selects the iteration discipline. Both pull rank over in-edges;
// they differ in what they propagate between rounds.
type Strategy uint8

const (
	// Topological recomputes every node's rank each round from the full
	// pull sum of its predecessors, stopping when the accumulated rank
	// movement of a round falls to the tolerance.
	Topological Strategy = iota

	// Residual propagates only the rank still owed to each node. A round
	// first folds super-tolerance residual into rank and publishes the
	// matching per-successor delta, then each node pulls its predecessors'
	// deltas into a fresh residual. Stops when a round activates nothing.
	Residual
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case Topological:
		return "topological"
	case Residual:
		return "residual"
	default:
		return "unknown"
	}
}

// Default tunables, matching the standard PageRank formulation.
const (
	// DefaultAlpha is the damping factor.
	DefaultAlpha = 0.85

	// DefaultTolerance bounds the per-round rank movement at convergence.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the round count on non-converging inputs.
	DefaultMaxIterations = 1000

	// DefaultChunkSize is the scheduling granularity of parallel loops.
	DefaultChunkSize = 64

	// DefaultRankProperty names the node column ranks are written to.
	DefaultRankProperty = "rank"
)

// Options configures a solve. Immutable once iteration starts; Run
// validates the whole value before any computation begins.
//
//	Alpha           – damping factor in (0, 1).
//	Tolerance       – convergence threshold on per-round rank movement.
//	MaxIterations   – hard round cap.
//	InitialResidual – residual seed per node. Zero means (1-Alpha)/N,
//	                  resolved against the graph at run time.
//	ChunkSize       – items a worker claims per grab in parallel loops.
//	Strategy        – Topological or Residual.
//	RankProperty    – float64 node column ranks are written to.
//	ViewMode        – how reverse adjacency is materialized: Asymmetric
//	                  builds a transpose, Symmetric aliases the forward
//	                  edges (only correct on symmetric inputs).
type Options struct {
	Alpha           float64
	Tolerance       float64
	MaxIterations   int
	InitialResidual float64
	ChunkSize       int
	Strategy        Strategy
	RankProperty    string
	ViewMode        inout.Mode
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithAlpha sets the damping factor.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithTolerance sets the convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the hard round cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithInitialResidual overrides the residual seed of the Residual strategy.
func WithInitialResidual(r float64) Option {
	return func(o *Options) { o.InitialResidual = r }
}

// WithChunkSize sets the scheduling granularity of the parallel loops.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.ChunkSize = n }
}

// WithStrategy selects the iteration discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithRankProperty names the node column ranks are written to.
func WithRankProperty(name string) Option {
	return func(o *Options) { o.RankProperty = name }
}

// WithViewMode selects how the reverse adjacency is materialized.
func WithViewMode(m inout.Mode) Option {
	return func(o *Options) { o.ViewMode = m }
}

// DefaultOptions returns the solver defaults: residual iteration over an
// explicit transpose with the textbook damping and tolerance.
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		ChunkSize:     DefaultChunkSize,
		Strategy:      Residual,
		RankProperty:  DefaultRankProperty,
		ViewMode:      inout.Asymmetric,
	}
}

// Statistics summarizes a finished solve: the extreme and mean ranks and
// the total rank mass remaining in the graph. Mass below 1 measures what
// dangling nodes leaked. Derived, read-only.
type Statistics struct {
	MinRank     float64
	MaxRank     float64
	AverageRank float64
	TotalMass   float64
}
