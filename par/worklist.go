package par

import (
	"math"
	"runtime"
	"sync"
)

// ForEachBucketed drains a BucketQueue seeded with initial, invoking body
// for every item in non-decreasing bucket order. body receives a push
// callback for newly generated items; pushed items land in the same or a
// later bucket and are processed before ForEachBucketed returns. The call
// blocks until the queue is quiescent.
//
// By default idle workers grab items pushed into the still-draining bucket
// as soon as they appear. WithBarrier instead processes the bucket in full
// synchronized waves: a refill is only taken up after every item of the
// previous wave has completed.
func ForEachBucketed[T any](initial []T, key func(T) uint64, body func(item T, push func(T)), opts ...Option) {
	cfg := buildOptions(opts)
	q := NewBucketQueue[T]()
	for _, it := range initial {
		q.Push(it, key(it))
	}
	push := func(t T) { q.Push(t, key(t)) }

	if cfg.Barrier {
		drainWaves(q, body, push, opts)

		return
	}
	drainAsync(q, body, push, cfg)
}

// drainAsync runs cfg.Workers goroutines over the shared queue. Within a
// bucket items interleave arbitrarily across workers; the bucket boundary
// itself is enforced by BucketQueue.TryAdvance.
func drainAsync[T any](q *BucketQueue[T], body func(T, func(T)), push func(T), cfg Options) {
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				batch, ok := q.PopCurrent(cfg.ChunkSize)
				if ok {
					for i := range batch {
						body(batch[i], push)
					}
					q.Done()

					continue
				}
				if q.TryAdvance() {
					continue
				}
				if q.Quiescent() {
					return
				}
				// Another worker still holds current-bucket items.
				runtime.Gosched()
			}
		}()
	}
	wg.Wait()
}

// drainWaves processes one whole bucket snapshot per parallel wave, with a
// full barrier between waves.
func drainWaves[T any](q *BucketQueue[T], body func(T, func(T)), push func(T), opts []Option) {
	for {
		batch, ok := q.PopCurrent(math.MaxInt)
		if !ok {
			if q.TryAdvance() {
				continue
			}
			if q.Quiescent() {
				return
			}

			continue
		}
		For(len(batch), func(i int) { body(batch[i], push) }, opts...)
		q.Done()
	}
}
