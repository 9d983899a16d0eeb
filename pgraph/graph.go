package pgraph

import (
	"fmt"
	"sort"
)

// Graph is a directed adjacency-array (CSR) property graph.
//
// Topology is fixed after construction: offsets has NumNodes+1 entries and
// dst holds edge destinations grouped contiguously by source, so the
// out-edges of node u occupy the half-open handle range
// [offsets[u], offsets[u+1]). Property columns are mutable; the topology
// arrays are read-only during computation.
type Graph struct {
	offsets []int    // len NumNodes+1; offsets[u]..offsets[u+1] = out-edge range of u
	dst     []NodeID // len NumEdges; destination of each edge handle

	nodeProps map[string]*Column
	edgeProps map[string]*Column
}

// NumNodes returns the number of nodes, N. Node handles are [0, N).
func (g *Graph) NumNodes() int { return len(g.offsets) - 1 }

// NumEdges returns the number of edges, E. Edge handles are [0, E).
func (g *Graph) NumEdges() int { return len(g.dst) }

// OutEdges returns the half-open edge-handle range [begin, end) of node u's
// outgoing edges. Callers must ensure u is in range; this is the hot path
// of every relaxation loop and performs no validation.
// Complexity: O(1).
func (g *Graph) OutEdges(u NodeID) (begin, end int) {
	return g.offsets[u], g.offsets[u+1]
}

// OutDegree returns the number of outgoing edges of u.
// Complexity: O(1).
func (g *Graph) OutDegree(u NodeID) int {
	return g.offsets[u+1] - g.offsets[u]
}

// EdgeDst resolves edge handle e to its destination node.
// Complexity: O(1).
func (g *Graph) EdgeDst(e int) NodeID { return g.dst[e] }

// HasNode reports whether u is a valid node handle.
func (g *Graph) HasNode(u NodeID) bool { return int(u) < g.NumNodes() }

// ConstructNodeProperty creates a zeroed node column with the given name and
// kind. Returns ErrPropertyExists (wrapped with the name) if already present.
func (g *Graph) ConstructNodeProperty(name string, kind Kind) (*Column, error) {
	if _, ok := g.nodeProps[name]; ok {
		return nil, fmt.Errorf("%w: node property %q", ErrPropertyExists, name)
	}
	c := newColumn(name, kind, g.NumNodes())
	g.nodeProps[name] = c

	return c, nil
}

// ConstructEdgeProperty creates a zeroed edge column with the given name and
// kind. Returns ErrPropertyExists (wrapped with the name) if already present.
func (g *Graph) ConstructEdgeProperty(name string, kind Kind) (*Column, error) {
	if _, ok := g.edgeProps[name]; ok {
		return nil, fmt.Errorf("%w: edge property %q", ErrPropertyExists, name)
	}
	c := newColumn(name, kind, g.NumEdges())
	g.edgeProps[name] = c

	return c, nil
}

// EnsureNodeProperty returns the named node column, creating it when absent.
// An existing column of a different kind yields ErrKindMismatch: output
// columns are rewritten in place, never silently retyped.
func (g *Graph) EnsureNodeProperty(name string, kind Kind) (*Column, error) {
	if c, ok := g.nodeProps[name]; ok {
		if c.kind != kind {
			return nil, fmt.Errorf("%w: node property %q holds %s, want %s",
				ErrKindMismatch, name, c.kind, kind)
		}

		return c, nil
	}

	return g.ConstructNodeProperty(name, kind)
}

// NodeProperty returns the named node column or ErrPropertyNotFound.
func (g *Graph) NodeProperty(name string) (*Column, error) {
	c, ok := g.nodeProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: node property %q", ErrPropertyNotFound, name)
	}

	return c, nil
}

// EdgeProperty returns the named edge column or ErrPropertyNotFound.
func (g *Graph) EdgeProperty(name string) (*Column, error) {
	c, ok := g.edgeProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: edge property %q", ErrPropertyNotFound, name)
	}

	return c, nil
}

// EdgeProperties returns every edge column, in no particular order.
func (g *Graph) EdgeProperties() []*Column {
	cols := make([]*Column, 0, len(g.edgeProps))
	for _, c := range g.edgeProps {
		cols = append(cols, c)
	}

	return cols
}

// SortOutEdges re-orders the out-edges of node u by the supplied comparison
// over destination ids, carrying every edge property column along with the
// permutation. Only u's contiguous edge range is touched; other nodes'
// adjacency and columns are unaffected.
//
// Not safe against concurrent traversal of u's out-edges.
// Complexity: O(d log d · P) for out-degree d and P edge columns.
func (g *Graph) SortOutEdges(u NodeID, less func(a, b NodeID) bool) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	begin, end := g.OutEdges(u)
	sort.Sort(&edgeSorter{
		dst:  g.dst[begin:end],
		cols: g.edgeProps,
		base: begin,
		less: less,
	})

	return nil
}

// edgeSorter sorts one node's dst sub-slice while mirroring every swap into
// the edge property columns (which are indexed by absolute edge handle).
type edgeSorter struct {
	dst  []NodeID
	cols map[string]*Column
	base int
	less func(a, b NodeID) bool
}

func (s *edgeSorter) Len() int           { return len(s.dst) }
func (s *edgeSorter) Less(i, j int) bool { return s.less(s.dst[i], s.dst[j]) }

func (s *edgeSorter) Swap(i, j int) {
	s.dst[i], s.dst[j] = s.dst[j], s.dst[i]
	for _, c := range s.cols {
		c.Swap(s.base+i, s.base+j)
	}
}
