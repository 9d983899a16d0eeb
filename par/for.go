package par

import (
	"sync"
	"sync/atomic"
)

// For executes body(i) for every i in [0, n) across a bounded set of worker
// goroutines and returns only when all iterations have completed (fork-join
// barrier). Iterations are claimed in contiguous chunks of Options.ChunkSize
// via an atomic cursor; within a chunk they run in index order, across
// chunks in no particular order.
//
// The caller is responsible for the partitioning discipline of body: every
// index is executed by exactly one worker, so per-index writes need no
// synchronization, but reads of state written under other indices race
// unless that state is atomic.
func For(n int, body func(i int), opts ...Option) {
	if n <= 0 {
		return
	}
	cfg := buildOptions(opts)
	if cfg.Workers <= 1 || n <= cfg.ChunkSize {
		for i := 0; i < n; i++ {
			body(i)
		}

		return
	}

	chunk := int64(cfg.ChunkSize)
	limit := int64(n)
	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				start := next.Add(chunk) - chunk
				if start >= limit {
					return
				}
				end := min(start+chunk, limit)
				for i := start; i < end; i++ {
					body(int(i))
				}
			}
		}()
	}
	wg.Wait()
}
