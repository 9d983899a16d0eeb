package par

import "sync/atomic"

// Reducers are associative accumulators shared by reference across the
// workers of a single round or phase. Scope each instance to one phase and
// Reset it between rounds rather than holding it as persistent state.

// Sum accumulates a scalar total. The zero value is an empty sum.
type Sum[W Scalar] struct {
	bits atomic.Uint64
}

// Add folds v into the running total.
func (s *Sum[W]) Add(v W) {
	for {
		ob := s.bits.Load()
		nb := toBits(fromBits[W](ob) + v)
		if s.bits.CompareAndSwap(ob, nb) {
			return
		}
	}
}

// Reduce returns the accumulated total.
func (s *Sum[W]) Reduce() W { return fromBits[W](s.bits.Load()) }

// Reset clears the total for the next round.
func (s *Sum[W]) Reset() { s.bits.Store(toBits[W](0)) }

// Max tracks the largest value updated so far. The zero value starts at the
// zero of W, which suits the non-negative quantities the kernels reduce.
type Max[W Scalar] struct {
	bits atomic.Uint64
}

// Update raises the tracked maximum to v if v is larger.
func (m *Max[W]) Update(v W) {
	for {
		ob := m.bits.Load()
		if v <= fromBits[W](ob) {
			return
		}
		if m.bits.CompareAndSwap(ob, toBits(v)) {
			return
		}
	}
}

// Reduce returns the maximum observed.
func (m *Max[W]) Reduce() W { return fromBits[W](m.bits.Load()) }

// Reset clears the maximum for the next round.
func (m *Max[W]) Reset() { m.bits.Store(toBits[W](0)) }

// Counter is an integral event tally.
type Counter struct {
	v atomic.Int64
}

// Add increments the tally by n.
func (c *Counter) Add(n int64) { c.v.Add(n) }

// Reduce returns the tally.
func (c *Counter) Reduce() int64 { return c.v.Load() }

// Reset clears the tally for the next round.
func (c *Counter) Reset() { c.v.Store(0) }

// LogicalOr reduces boolean updates under disjunction; one true update
// makes the round's reduction true.
type LogicalOr struct {
	v atomic.Bool
}

// Update folds v into the disjunction.
func (o *LogicalOr) Update(v bool) {
	if v {
		o.v.Store(true)
	}
}

// Reduce returns the disjunction of all updates since the last Reset.
func (o *LogicalOr) Reduce() bool { return o.v.Load() }

// Reset clears the flag for the next round.
func (o *LogicalOr) Reset() { o.v.Store(false) }
