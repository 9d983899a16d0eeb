package par

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// BucketQueue is a priority-bucket worklist: items carry an integral key,
// buckets are drained strictly in non-decreasing key order, and pushes are
// accepted concurrently while the current bucket drains. Occupied buckets
// are tracked in a bitset so locating the next non-empty bucket is a word
// scan rather than a search over all keys ever seen.
//
// Drain protocol (shared by serial and parallel callers):
//
//	for {
//	    batch, ok := q.PopCurrent(chunk)
//	    if ok { process batch, may q.Push(...); q.Done(); continue }
//	    if q.TryAdvance() { continue }
//	    if q.Quiescent() { break }
//	    // otherwise another worker still holds items that may refill
//	    // the current bucket; retry
//	}
//
// TryAdvance refuses to move past the current bucket while any popped batch
// is still outstanding, which is what makes the bucket boundary a barrier:
// no later-bucket item is handed out before every current-bucket item has
// been fully processed.
type BucketQueue[T any] struct {
	mu      sync.Mutex
	buckets map[uint64][]T
	live    *bitset.BitSet
	cur     uint64
	started bool
	pending int
}

// NewBucketQueue returns an empty queue.
func NewBucketQueue[T any]() *BucketQueue[T] {
	return &BucketQueue[T]{
		buckets: make(map[uint64][]T),
		live:    bitset.New(256),
	}
}

// Push inserts item under key. Relaxation keys are non-decreasing along
// non-negative-weight edges; a key below the bucket currently draining is
// clamped to it so the drain order is never violated.
func (q *BucketQueue[T]) Push(item T, key uint64) {
	q.mu.Lock()
	if q.started && key < q.cur {
		key = q.cur
	}
	q.buckets[key] = append(q.buckets[key], item)
	q.live.Set(uint(key))
	q.mu.Unlock()
}

// PopCurrent removes up to max items from the current bucket. It returns
// false when the current bucket is momentarily empty (it may still be
// refilled by outstanding batches). A successful pop counts as outstanding
// until the caller invokes Done.
func (q *BucketQueue[T]) PopCurrent(max int) ([]T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.started {
		k, ok := q.live.NextSet(0)
		if !ok {
			return nil, false
		}
		q.cur, q.started = uint64(k), true
	}
	b := q.buckets[q.cur]
	if len(b) == 0 {
		return nil, false
	}
	take := min(max, len(b))
	batch := b[:take]
	rest := b[take:]
	if len(rest) == 0 {
		delete(q.buckets, q.cur)
		q.live.Clear(uint(q.cur))
	} else {
		q.buckets[q.cur] = rest
	}
	q.pending++

	return batch, true
}

// Done marks one previously popped batch as fully processed.
func (q *BucketQueue[T]) Done() {
	q.mu.Lock()
	q.pending--
	q.mu.Unlock()
}

// TryAdvance moves the drain cursor to the next occupied bucket. It returns
// true when the caller should retry PopCurrent: either the current bucket
// was refilled behind its back, or the cursor advanced. It returns false
// while outstanding batches could still push into the current bucket, and
// false when no occupied bucket remains.
func (q *BucketQueue[T]) TryAdvance() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.started {
		return !q.live.None()
	}
	if len(q.buckets[q.cur]) > 0 {
		return true
	}
	if q.pending > 0 {
		return false
	}
	k, ok := q.live.NextSet(uint(q.cur) + 1)
	if !ok {
		return false
	}
	q.cur = uint64(k)

	return true
}

// Quiescent reports whether the queue holds no items and no popped batch is
// outstanding — the solver-global termination condition.
func (q *BucketQueue[T]) Quiescent() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pending == 0 && q.live.None()
}
