package inout

import (
	"fmt"
	"sort"

	"github.com/gravelib/gravel/pgraph"
)

// SortInEdgesByDst re-orders node n's in-edges by ascending predecessor id.
// Only n's in-edge structure is mutated (the forward structure when the
// view is Symmetric); concurrent readers of other nodes are unaffected, but
// a concurrent sort and traversal of the same node is unsafe and must be
// serialized by the caller.
// Complexity: O(d log d) for in-degree d.
func (v *View) SortInEdgesByDst(n pgraph.NodeID) error {
	return v.SortInEdges(n, func(a, b pgraph.NodeID) bool { return a < b })
}

// SortInEdges re-orders node n's in-edges by the supplied comparison over
// predecessor ids, carrying the copied edge columns along with the
// permutation in Asymmetric mode. Same safety contract as SortInEdgesByDst.
func (v *View) SortInEdges(n pgraph.NodeID, less func(a, b pgraph.NodeID) bool) error {
	if !v.g.HasNode(n) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}
	if v.mode == Symmetric {
		return v.g.SortOutEdges(n, less)
	}
	begin, end := v.inOff[n], v.inOff[n+1]
	sort.Sort(&inEdgeSorter{
		src:  v.inSrc[begin:end],
		cols: v.inProps,
		base: begin,
		less: less,
	})

	return nil
}

// inEdgeSorter permutes one node's slice of the transpose source array,
// mirroring every swap into the copied edge columns.
type inEdgeSorter struct {
	src  []pgraph.NodeID
	cols map[string]*pgraph.Column
	base int
	less func(a, b pgraph.NodeID) bool
}

func (s *inEdgeSorter) Len() int           { return len(s.src) }
func (s *inEdgeSorter) Less(i, j int) bool { return s.less(s.src[i], s.src[j]) }

func (s *inEdgeSorter) Swap(i, j int) {
	s.src[i], s.src[j] = s.src[j], s.src[i]
	for _, c := range s.cols {
		c.Swap(s.base+i, s.base+j)
	}
}
