package par

import "runtime"

// Scalar constrains the numeric types the substrate operates on.
// It matches the closed kind set of pgraph property columns.
type Scalar interface {
	uint32 | int32 | uint64 | int64 | float32 | float64
}

// Options tunes scheduling granularity for For and ForEachBucketed.
//
//	– ChunkSize: number of consecutive items a worker claims per grab.
//	– Workers:   number of worker goroutines (default GOMAXPROCS).
//	– Barrier:   ForEachBucketed only; synchronize a full wave before
//	             re-processing items pushed into the current bucket.
type Options struct {
	ChunkSize int
	Workers   int
	Barrier   bool
}

// Option mutates Options via functional application.
type Option func(*Options)

// DefaultChunkSize is the per-grab scheduling granularity used when no
// WithChunkSize option is supplied.
const DefaultChunkSize = 64

// DefaultOptions returns the substrate defaults: DefaultChunkSize items per
// grab, one worker per available CPU, no bucket barrier.
func DefaultOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		Workers:   runtime.GOMAXPROCS(0),
		Barrier:   false,
	}
}

// WithChunkSize sets the number of consecutive items claimed per grab.
// Non-positive values are ignored.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// WithWorkers sets the worker goroutine count. Non-positive values are
// ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithBarrier makes ForEachBucketed synchronize a full processing wave
// before items pushed into the still-current bucket are taken up, instead
// of letting idle workers grab them immediately.
func WithBarrier() Option {
	return func(o *Options) { o.Barrier = true }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
