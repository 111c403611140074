package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	Track("coordinator.setup")()
	Track("coordinator.setup")()

	snap := Snapshot()
	if _, ok := snap["coordinator.setup"]; !ok {
		t.Fatalf("bucket missing from snapshot: %v", snap)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot has %d buckets, want 1", len(snap))
	}
}

func TestResetFrame(t *testing.T) {
	record("a", time.Millisecond)
	ResetFrame()
	if n := len(Snapshot()); n != 0 {
		t.Errorf("snapshot has %d buckets after reset, want 0", n)
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	record("coordinator.setup", 2*time.Millisecond)
	record("coordinator.resize", 3*time.Millisecond)
	record("renderer.Render", 7*time.Millisecond)

	if got := SumWithPrefix("coordinator."); got != 5*time.Millisecond {
		t.Errorf("SumWithPrefix = %v, want 5ms", got)
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	record("small", 500*time.Microsecond)
	record("big", 4200*time.Microsecond)
	record("mid", 2*time.Millisecond)

	got := TopN(2)
	want := "big:4.2ms, mid:2ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10) = %q, want all three buckets", all)
	}
}
