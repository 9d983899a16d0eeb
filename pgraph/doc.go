// Package pgraph provides the storage collaborator for the gravel analytics
// kernels: a directed CSR (compressed sparse row) graph whose per-node and
// per-edge scalar state lives in named, typed property columns.
//
// # Model
//
//   - Nodes are dense handles in [0, NumNodes); edges are dense handles in
//     [0, NumEdges) grouped contiguously by source node.
//   - OutEdges(u) and EdgeDst(e) are O(1); edge (u,v) always resolves to a
//     destination handle in constant time.
//   - Topology is immutable after Builder.Finish. Property columns are the
//     only mutable state and are mutated in place by the algorithm packages.
//
// # Property columns
//
// A column carries one scalar kind from the closed set {uint32, int32,
// uint64, int64, float32, float64}. Algorithms inspect Column.Kind once at
// their boundary and dispatch into a monomorphized implementation; the
// generic accessor Data[W] returns the typed backing slice or
// ErrKindMismatch.
//
// # Construction
//
//	b := pgraph.NewBuilder(4)
//	i, _ := b.AddEdge(0, 1)
//	g := b.Finish()
//	w, _ := g.ConstructEdgeProperty("weight", pgraph.Uint32)
//	ws, _ := pgraph.Data[uint32](w)
//	ws[b.CSRIndex(i)] = 7
//
// Parsing graphs from files is out of scope; Builder is the only
// construction path.
package pgraph
