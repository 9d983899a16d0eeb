// Package sssp computes single-source shortest paths over a pgraph.Graph
// using one of several interchangeable scheduling strategies, all built on
// a single lock-free relaxation rule.
//
// The relaxation rule, shared by every strategy:
//
//  1. A request (u, d) is processed only if d still equals u's current best
//     distance; otherwise it is stale and dropped ("empty work").
//  2. For each out-edge (u,v,w): candidate = d + w, and v's distance is
//     lowered atomically to min(current, candidate).
//  3. Iff the atomic-min strictly improved v, a new request for v is
//     enqueued with the improved distance.
//
// Atomic-min plus conditional enqueue guarantees no node ever regresses
// and every improvement is eventually re-propagated, regardless of how
// many workers race on the same destination. Termination is solver-global:
// the worklist (or the round-change flag) runs empty. No strategy enforces
// a round cap, so inputs that violate the non-negative-weight precondition
// may never terminate.
package sssp
