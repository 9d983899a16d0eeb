package inout

import (
	"fmt"

	"github.com/gravelib/gravel/pgraph"
)

// View augments a forward-edge graph with reverse-edge iteration. The mode
// is fixed at construction: Symmetric aliases the forward structure,
// Asymmetric materializes a transpose with copied edge data.
//
// Invariant: for every forward edge (u,v), exactly one in-edge entry is
// reachable from v's iteration, in either mode.
type View struct {
	g    *pgraph.Graph
	mode Mode

	// Transpose, populated in Asymmetric mode only. inOff/inSrc mirror the
	// CSR layout of pgraph: the in-edges of v occupy [inOff[v], inOff[v+1])
	// and inSrc holds the predecessor at each position.
	inOff   []int
	inSrc   []pgraph.NodeID
	inProps map[string]*pgraph.Column
}

// NewSymmetric wraps g in aliasing mode: in-edge iteration of v walks v's
// forward adjacency. Correct only when the input is symmetric.
// Complexity: O(1).
func NewSymmetric(g *pgraph.Graph) (*View, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &View{g: g, mode: Symmetric}, nil
}

// NewAsymmetric wraps g with an explicit transpose. Every edge property
// column of g is copied (not aliased) into the transpose's edge order.
// Complexity: O(N + E·P) for P edge columns.
func NewAsymmetric(g *pgraph.Graph) (*View, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n, e := g.NumNodes(), g.NumEdges()

	// Counting pass over destinations, then prefix sum into offsets.
	inOff := make([]int, n+1)
	for h := 0; h < e; h++ {
		inOff[g.EdgeDst(h)+1]++
	}
	for i := 1; i <= n; i++ {
		inOff[i] += inOff[i-1]
	}

	// Scatter pass: record each edge's source under its destination, and
	// remember the forward handle so edge data can be gathered afterwards.
	inSrc := make([]pgraph.NodeID, e)
	fwd := make([]int, e)
	cursor := make([]int, n)
	copy(cursor, inOff[:n])
	for u := 0; u < n; u++ {
		begin, end := g.OutEdges(pgraph.NodeID(u))
		for h := begin; h < end; h++ {
			v := g.EdgeDst(h)
			pos := cursor[v]
			cursor[v]++
			inSrc[pos] = pgraph.NodeID(u)
			fwd[pos] = h
		}
	}

	inProps := make(map[string]*pgraph.Column)
	for _, src := range g.EdgeProperties() {
		c := pgraph.NewColumn(src.Name(), src.Kind(), e)
		if err := c.Gather(src, fwd); err != nil {
			return nil, fmt.Errorf("inout: copying edge property %q: %w", src.Name(), err)
		}
		inProps[src.Name()] = c
	}

	return &View{g: g, mode: Asymmetric, inOff: inOff, inSrc: inSrc, inProps: inProps}, nil
}

// Graph returns the wrapped forward graph.
func (v *View) Graph() *pgraph.Graph { return v.g }

// Mode returns the reverse-adjacency mode captured at construction.
func (v *View) Mode() Mode { return v.mode }

// InEdges returns an iterator over the in-edges of node n. The mode is
// checked here, once per call; the iterator itself is a tagged union over
// the two cursor kinds. Callers must ensure n is in range (hot path).
func (v *View) InEdges(n pgraph.NodeID) InEdgeIter {
	if v.mode == Symmetric {
		begin, end := v.g.OutEdges(n)

		return InEdgeIter{kind: fwdIter, cur: begin, end: end}
	}

	return InEdgeIter{kind: revIter, cur: v.inOff[n], end: v.inOff[n+1]}
}

// InEdgeSrc resolves the current entry of it to the predecessor node.
func (v *View) InEdgeSrc(it InEdgeIter) pgraph.NodeID {
	if it.kind == fwdIter {
		return v.g.EdgeDst(it.cur)
	}

	return v.inSrc[it.cur]
}

// InDegree returns the number of in-edges of node n.
func (v *View) InDegree(n pgraph.NodeID) int {
	if v.mode == Symmetric {
		return v.g.OutDegree(n)
	}

	return v.inOff[n+1] - v.inOff[n]
}

// InEdgeProperty returns the named edge column as seen from the in-edge
// side, indexed by InEdgeIter.Pos. In Symmetric mode this aliases the
// forward column; in Asymmetric mode it is the transpose's private copy,
// so forward-side mutation is not reflected here.
func (v *View) InEdgeProperty(name string) (*pgraph.Column, error) {
	if v.mode == Symmetric {
		return v.g.EdgeProperty(name)
	}
	c, ok := v.inProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: edge property %q", pgraph.ErrPropertyNotFound, name)
	}

	return c, nil
}
