package par

import (
	"math"
	"sync/atomic"
)

// toBits maps a scalar to a uint64 bit pattern. The mapping is bijective
// per type; ordering is re-established by decoding before comparison, so
// the encoding itself need not be order-preserving.
func toBits[W Scalar](v W) uint64 {
	switch x := any(v).(type) {
	case uint32:
		return uint64(x)
	case int32:
		return uint64(uint32(x))
	case uint64:
		return x
	case int64:
		return uint64(x)
	case float32:
		return uint64(math.Float32bits(x))
	default:
		return math.Float64bits(any(v).(float64))
	}
}

// fromBits inverts toBits.
func fromBits[W Scalar](b uint64) W {
	var zero W
	switch any(zero).(type) {
	case uint32:
		return any(uint32(b)).(W)
	case int32:
		return any(int32(uint32(b))).(W)
	case uint64:
		return any(b).(W)
	case int64:
		return any(int64(b)).(W)
	case float32:
		return any(math.Float32frombits(uint32(b))).(W)
	default:
		return any(math.Float64frombits(b)).(W)
	}
}

// AtomicScalar is a scalar cell safe under arbitrary concurrent writers.
// The zero value holds the zero of W.
//
// Min is the correctness-critical primitive of the relaxation kernels: it
// guarantees the stored value never regresses upward no matter how many
// goroutines race on the same cell, and reports the previous value so the
// caller can tell a strict improvement from a lost race.
type AtomicScalar[W Scalar] struct {
	bits atomic.Uint64
}

// Load returns the current value.
func (a *AtomicScalar[W]) Load() W { return fromBits[W](a.bits.Load()) }

// Store unconditionally sets the value. Not for use while Min writers race.
func (a *AtomicScalar[W]) Store(v W) { a.bits.Store(toBits(v)) }

// Min lowers the cell to candidate if candidate is strictly smaller,
// retrying on contention, and returns the value held before the call.
// The caller observed a strict improvement iff candidate < returned value.
func (a *AtomicScalar[W]) Min(candidate W) W {
	for {
		ob := a.bits.Load()
		old := fromBits[W](ob)
		if candidate >= old {
			return old
		}
		if a.bits.CompareAndSwap(ob, toBits(candidate)) {
			return old
		}
	}
}
