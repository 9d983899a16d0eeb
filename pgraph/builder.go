package pgraph

import "fmt"

// Builder accumulates directed edges for a fixed node count and finalizes
// them into a CSR Graph. Edges keep their per-source insertion order, so
// the k-th edge added with source u receives the k-th handle in u's range;
// CSRIndex maps an insertion index back to the final edge handle, which is
// how callers fill edge property columns after Finish.
type Builder struct {
	n        int
	srcs     []NodeID
	dsts     []NodeID
	perm     []int // insertion index -> final edge handle, set by Finish
	finished bool
}

// NewBuilder returns a Builder for a graph of n nodes and no edges yet.
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// AddEdge appends the directed edge u→v and returns its insertion index.
// Self-loops and parallel edges are permitted; both endpoints must be in
// [0, n).
func (b *Builder) AddEdge(u, v NodeID) (int, error) {
	if int(u) >= b.n || int(v) >= b.n {
		return 0, fmt.Errorf("%w: edge %d→%d in graph of %d nodes", ErrNodeOutOfRange, u, v, b.n)
	}
	b.srcs = append(b.srcs, u)
	b.dsts = append(b.dsts, v)

	return len(b.srcs) - 1, nil
}

// Finish counting-sorts the accumulated edges by source into CSR form and
// returns the resulting Graph. The Builder remains usable read-only for
// CSRIndex lookups but accepts no further edges.
// Complexity: O(N + E).
func (b *Builder) Finish() *Graph {
	e := len(b.srcs)
	offsets := make([]int, b.n+1)
	for _, u := range b.srcs {
		offsets[u+1]++
	}
	for i := 1; i <= b.n; i++ {
		offsets[i] += offsets[i-1]
	}

	// Stable scatter: cursor[u] walks u's range in insertion order.
	dst := make([]NodeID, e)
	b.perm = make([]int, e)
	cursor := make([]int, b.n)
	copy(cursor, offsets[:b.n])
	for i, u := range b.srcs {
		pos := cursor[u]
		cursor[u]++
		dst[pos] = b.dsts[i]
		b.perm[i] = pos
	}
	b.finished = true

	return &Graph{
		offsets:   offsets,
		dst:       dst,
		nodeProps: make(map[string]*Column),
		edgeProps: make(map[string]*Column),
	}
}

// CSRIndex maps the insertion index returned by AddEdge to the edge handle
// in the finished Graph. Valid only after Finish.
func (b *Builder) CSRIndex(i int) int {
	if !b.finished {
		panic("pgraph: CSRIndex before Finish")
	}

	return b.perm[i]
}
