package inout

import "errors"

// Sentinel errors for adapter construction and per-node operations.
var (
	// ErrNilGraph indicates a nil *pgraph.Graph was passed to a constructor.
	ErrNilGraph = errors.New("inout: graph is nil")

	// ErrNodeOutOfRange indicates a node handle outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("inout: node handle out of range")
)

// Mode selects how a View materializes reverse adjacency. It is captured
// once at construction and never changes; every per-call dispatch checks
// this single graph-wide flag rather than a per-iterator virtual type.
type Mode uint8

const (
	// Symmetric aliases the forward adjacency: iterating the in-edges of v
	// yields the same entries as its out-edges, at zero extra storage.
	// Only correct for symmetric (undirected-style) inputs.
	Symmetric Mode = iota

	// Asymmetric stores an explicit transpose. Edge property values are
	// copied at construction, so mutating a forward edge's data does not
	// affect its mirrored reverse entry.
	Asymmetric
)

// iterKind tags which underlying cursor an InEdgeIter walks.
type iterKind uint8

const (
	fwdIter iterKind = iota
	revIter
)

// InEdgeIter is a tagged union over the two underlying in-edge cursor
// kinds. It supports increment (Next), equality (Equal), random-access
// distance (Len), and an opaque position (Pos) used only for bookkeeping
// and property lookup; it carries no payload of its own.
type InEdgeIter struct {
	kind iterKind
	cur  int
	end  int
}

// Done reports whether the iterator is exhausted.
func (it InEdgeIter) Done() bool { return it.cur >= it.end }

// Next advances to the following in-edge.
func (it *InEdgeIter) Next() { it.cur++ }

// Len returns the number of in-edges remaining, including the current one.
func (it InEdgeIter) Len() int { return it.end - it.cur }

// Pos returns the opaque position of the current entry. Positions index
// the columns returned by View.InEdgeProperty; they carry no other meaning.
func (it InEdgeIter) Pos() int { return it.cur }

// Equal reports whether two iterators denote the same position. Iterators
// of different underlying kinds are never equal.
func (it InEdgeIter) Equal(o InEdgeIter) bool {
	return it.kind == o.kind && it.cur == o.cur
}
