// Package inout provides the in/out-edge graph adapter: a View over a
// directed pgraph.Graph that adds predecessor (in-edge) iteration for
// pull-style algorithms.
//
// # Modes
//
// The mode is fixed when the View is built and governs every later call:
//
//   - Symmetric (NewSymmetric): the reverse adjacency aliases the forward
//     adjacency. No extra storage; valid only when the input graph is
//     symmetric, i.e. every edge has its mirror.
//
//   - Asymmetric (NewAsymmetric): an explicit transpose is materialized,
//     with edge property data copied rather than aliased — mutating a
//     forward edge's data never changes its mirrored reverse entry.
//
// In both modes the invariant holds that each forward edge (u,v) is
// reachable exactly once from v's in-edge iteration.
//
// # Iteration
//
//	view, _ := inout.NewAsymmetric(g)
//	for it := view.InEdges(v); !it.Done(); it.Next() {
//	    pred := view.InEdgeSrc(it)
//	    // pull state from pred
//	}
//
// InEdgeIter is a tagged union over the two cursor kinds (forward alias vs
// transpose); the kind is decided per InEdges call from the view-wide mode
// flag, not baked into a per-iterator interface type.
//
// # Sorting
//
// SortInEdgesByDst and SortInEdges re-order one node's in-edges without
// touching its out-edge order (Asymmetric mode). Sorting mutates only the
// addressed node's structure; sorting and traversing the same node
// concurrently is unsafe and must be serialized externally.
package inout
