package pgraph

import "errors"

// Sentinel errors for property-graph operations.
var (
	// ErrNodeOutOfRange indicates a node handle outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("pgraph: node handle out of range")

	// ErrPropertyNotFound indicates that no column with the given name exists.
	ErrPropertyNotFound = errors.New("pgraph: property not found")

	// ErrPropertyExists indicates a column with the given name already exists.
	ErrPropertyExists = errors.New("pgraph: property already exists")

	// ErrKindMismatch indicates a column was accessed with the wrong scalar kind.
	ErrKindMismatch = errors.New("pgraph: property kind mismatch")
)

// NodeID is a dense node handle in [0, NumNodes).
type NodeID uint32

// Kind enumerates the closed set of scalar element types a property column
// may carry. Numeric dispatch at algorithm boundaries switches over Kind
// exactly once, then runs a monomorphized code path.
type Kind uint8

const (
	// Uint32 marks a column backed by []uint32.
	Uint32 Kind = iota
	// Int32 marks a column backed by []int32.
	Int32
	// Uint64 marks a column backed by []uint64.
	Uint64
	// Int64 marks a column backed by []int64.
	Int64
	// Float32 marks a column backed by []float32.
	Float32
	// Float64 marks a column backed by []float64.
	Float64
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Uint64:
		return "uint64"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Scalar constrains the Go types a property column may hold.
// It mirrors Kind one-to-one.
type Scalar interface {
	uint32 | int32 | uint64 | int64 | float32 | float64
}

// Column is a named, typed scalar vector attached to the nodes or edges of
// a Graph. The backing slice is shared, not copied: algorithms mutate
// column data in place during iteration.
type Column struct {
	name string
	kind Kind
	data any // one of []uint32, []int32, []uint64, []int64, []float32, []float64
}

// Name returns the column's registered name.
func (c *Column) Name() string { return c.name }

// Kind returns the scalar kind of the column's elements.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of elements in the column.
func (c *Column) Len() int {
	switch d := c.data.(type) {
	case []uint32:
		return len(d)
	case []int32:
		return len(d)
	case []uint64:
		return len(d)
	case []int64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	default:
		return 0
	}
}

// Data returns the typed backing slice of c, or ErrKindMismatch when W does
// not match the column's kind. The slice aliases the column: writes through
// it are visible to every other reader of the column.
func Data[W Scalar](c *Column) ([]W, error) {
	d, ok := c.data.([]W)
	if !ok {
		return nil, ErrKindMismatch
	}

	return d, nil
}

// KindOf reports the Kind corresponding to the scalar type W.
func KindOf[W Scalar]() Kind {
	var zero W
	switch any(zero).(type) {
	case uint32:
		return Uint32
	case int32:
		return Int32
	case uint64:
		return Uint64
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}

// newColumn allocates a zeroed column of n elements of the given kind.
func newColumn(name string, kind Kind, n int) *Column {
	c := &Column{name: name, kind: kind}
	switch kind {
	case Uint32:
		c.data = make([]uint32, n)
	case Int32:
		c.data = make([]int32, n)
	case Uint64:
		c.data = make([]uint64, n)
	case Int64:
		c.data = make([]int64, n)
	case Float32:
		c.data = make([]float32, n)
	case Float64:
		c.data = make([]float64, n)
	}

	return c
}

// NewColumn allocates a detached zeroed column of n elements. Detached
// columns back derived edge views (such as a transpose's copied edge data)
// that do not belong to any graph's registry.
func NewColumn(name string, kind Kind, n int) *Column {
	return newColumn(name, kind, n)
}

// Gather fills c[i] = src[idx[i]] for every i, permuting src's elements
// into c. Both columns must share a kind and len(c) must equal len(idx).
func (c *Column) Gather(src *Column, idx []int) error {
	if c.kind != src.kind {
		return ErrKindMismatch
	}
	switch d := c.data.(type) {
	case []uint32:
		s := src.data.([]uint32)
		for i, j := range idx {
			d[i] = s[j]
		}
	case []int32:
		s := src.data.([]int32)
		for i, j := range idx {
			d[i] = s[j]
		}
	case []uint64:
		s := src.data.([]uint64)
		for i, j := range idx {
			d[i] = s[j]
		}
	case []int64:
		s := src.data.([]int64)
		for i, j := range idx {
			d[i] = s[j]
		}
	case []float32:
		s := src.data.([]float32)
		for i, j := range idx {
			d[i] = s[j]
		}
	case []float64:
		s := src.data.([]float64)
		for i, j := range idx {
			d[i] = s[j]
		}
	}

	return nil
}

// Swap exchanges elements i and j of the column, whatever its kind.
// Used when the adjacency of a single node is re-sorted and its edge
// columns must follow the permutation.
func (c *Column) Swap(i, j int) {
	switch d := c.data.(type) {
	case []uint32:
		d[i], d[j] = d[j], d[i]
	case []int32:
		d[i], d[j] = d[j], d[i]
	case []uint64:
		d[i], d[j] = d[j], d[i]
	case []int64:
		d[i], d[j] = d[j], d[i]
	case []float32:
		d[i], d[j] = d[j], d[i]
	case []float64:
		d[i], d[j] = d[j], d[i]
	}
}
