// Package stats provides the lightweight instrumentation surface of the
// gravel kernels: wall-clock phase timers and one-shot stat reports,
// emitted as structured zerolog events.
//
// The package-level logger defaults to WarnLevel on stderr, so library use
// is silent; call SetLogger (or lower the level) to observe per-phase
// timings and per-run counters such as SSSP rounds or PageRank iterations.
package stats

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// SetLogger replaces the package logger. Typical use:
//
//	stats.SetLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel))
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// ReportSingle emits one named value for a region, mirroring how the
// kernels report self-defined statistics (round counts, empty work, …).
func ReportSingle(region, name string, value any) {
	l := current()
	l.Debug().
		Str("region", region).
		Interface(name, value).
		Msg("stat")
}

// Timer measures the wall-clock duration of a named phase. The zero value
// is unusable; obtain one with NewTimer. Start/Stop pairs may repeat; the
// durations accumulate.
type Timer struct {
	region string
	start  time.Time
	total  time.Duration
}

// NewTimer returns a stopped timer for the given region name.
func NewTimer(region string) *Timer {
	return &Timer{region: region}
}

// Start begins (or resumes) timing.
func (t *Timer) Start() { t.start = time.Now() }

// Stop ends the current interval, accumulates it, and logs the total.
func (t *Timer) Stop() {
	t.total += time.Since(t.start)
	l := current()
	l.Debug().
		Str("region", t.region).
		Dur("elapsed", t.total).
		Msg("timer")
}

// Duration returns the accumulated time across all Start/Stop intervals.
func (t *Timer) Duration() time.Duration { return t.total }
