package par

import "sync"

// Bag is an unordered concurrent collection supporting parallel insertion
// and a post-phase snapshot. Insertion order is not preserved; the bag is
// intended for "collect during one parallel phase, iterate in the next"
// use, such as materializing edge tiles before a round loop.
type Bag[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends v. Safe for concurrent use.
func (b *Bag[T]) Push(v T) {
	b.mu.Lock()
	b.items = append(b.items, v)
	b.mu.Unlock()
}

// Len returns the current item count.
func (b *Bag[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.items)
}

// Slice returns the collected items. Call only after all concurrent Push
// calls have completed; the returned slice is the bag's backing storage.
func (b *Bag[T]) Slice() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.items
}
