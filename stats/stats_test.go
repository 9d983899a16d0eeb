package stats_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gravelib/gravel/stats"
)

// resetLogger restores the default (silent) logger after a test swapped it.
func resetLogger() {
	stats.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel))
}

func TestReportSingle_EmitsStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	stats.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer resetLogger()

	stats.ReportSingle("SSSP", "BadWork", int64(17))

	out := buf.String()
	for _, want := range []string{`"region":"SSSP"`, `"BadWork":17`} {
		if !strings.Contains(out, want) {
			t.Fatalf("event %q missing %q", out, want)
		}
	}
}

func TestReportSingle_SilentByDefault(t *testing.T) {
	// The default level is Warn; Debug-level stat events must not surface.
	var buf bytes.Buffer
	stats.SetLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))
	defer resetLogger()

	stats.ReportSingle("SSSP", "rounds", 3)
	if buf.Len() != 0 {
		t.Fatalf("expected silence at WarnLevel, got %q", buf.String())
	}
}

func TestTimer_AccumulatesIntervals(t *testing.T) {
	tm := stats.NewTimer("phase")
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Stop()
	first := tm.Duration()
	if first <= 0 {
		t.Fatalf("duration after one interval = %v, want > 0", first)
	}

	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Stop()
	if tm.Duration() <= first {
		t.Fatalf("duration must accumulate across intervals: %v then %v", first, tm.Duration())
	}
}
