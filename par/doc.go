// Package par is the parallel execution substrate consumed by the gravel
// analytics kernels.
//
// It provides four primitives, all built on goroutines and atomics with no
// user-visible suspension points — a dispatched task runs to completion,
// and synchronization happens only at phase barriers and worklist drains:
//
//   - For: fork-join chunked parallel-for over an index range. Every index
//     runs exactly once on exactly one worker, which is the partitioning
//     invariant the single-writer phases of PageRank rely on.
//
//   - Reducers (Sum, Max, Counter, LogicalOr): associative accumulators
//     scoped to a single round or phase and passed by reference into loop
//     bodies. Reset between rounds; never keep one as global state.
//
//   - AtomicScalar.Min: lock-free atomic-min over the supported scalar
//     kinds, returning the previous value. This is the primitive that makes
//     concurrent shortest-path relaxation safe: a cell never regresses, and
//     a strict improvement is detected by exactly one racing writer.
//
//   - BucketQueue / ForEachBucketed: priority-bucket worklist drained in
//     non-decreasing key order with concurrent insertion into the current
//     bucket, optionally with a full wave barrier inside each bucket
//     (WithBarrier).
//
// The substrate is deliberately small: no work stealing between sub-queues,
// no NUMA placement, no cancellation. Failure inside a body is a panic and
// aborts the whole computation.
package par
