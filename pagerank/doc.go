// Package pagerank computes PageRank over a pgraph.Graph in pull style:
// every node aggregates contributions from its predecessors through an
// inout in-edge view, rather than scattering rank along its out-edges.
//
// Two strategies share that orientation:
//
//   - Topological recomputes every rank each round from the full pull sum
//     rank = α·Σ pred.rank/pred.outDeg + (1-α)/N, stopping when the total
//     rank movement of a round falls to the tolerance.
//   - Residual propagates only the rank still owed to a node: a round
//     folds super-tolerance residual into rank, publishes the matching
//     per-successor delta, and rebuilds each residual from the published
//     deltas of the predecessors. It stops when a round activates nothing.
//
// Dangling nodes publish no delta, so the rank mass flowing into them
// leaves the system; the total mass reported by ComputeStatistics measures
// that leak. Ranks are float64 regardless of the graph's edge data.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if the graph pointer is nil.
//	– ErrBadAlpha     if the damping factor is outside (0, 1).
//	– ErrBadTolerance if the convergence tolerance is not positive.
//	– ErrBadMaxIter   if the iteration cap is not positive.
package pagerank
