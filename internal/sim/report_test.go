package sim

import (
	"strings"
	"testing"
)

func TestMergeCounts_ByChildTier(t *testing.T) {
	ts := NewTestSim(WithTuning(still()),
		WithBody(100, 100, 0, 0, 0),
		WithBody(110, 100, 0, 0, 0),
		WithBody(400, 300, 0, 0, 2),
		WithBody(420, 300, 0, 0, 2),
	)
	ts.RunTicks(1)

	counts := MergeCounts(ts.SimLog)
	if counts[1] != 1 || counts[3] != 1 {
		t.Fatalf("unexpected merge counts: %v", counts)
	}
	if len(ts.Merges) != 2 {
		t.Fatalf("harness recorded %d merges, want 2", len(ts.Merges))
	}
}

func TestReport_ContainsStateAndLog(t *testing.T) {
	ts := NewTestSim(WithTuning(still()),
		WithBody(100, 100, 0, 0, 0),
		WithBody(110, 100, 0, 0, 0),
	)
	ts.RunTicks(5)

	report := ts.Sched.Report(0)
	for _, want := range []string{
		"--- Sputnik run report ---",
		"tick=5",
		"merges: t1=1",
		"tier_up",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSimLog_VerboseRecordsPositions(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithBody(200, 200, 0, 0, 0))
	ts.RunTicks(2)
	if n := ts.SimLog.CountCategory("body", "position"); n != 2 {
		t.Fatalf("expected 2 verbose position entries, got %d", n)
	}

	quiet := NewTestSim(WithBody(200, 200, 0, 0, 0))
	quiet.RunTicks(2)
	if n := quiet.SimLog.CountCategory("body", "position"); n != 0 {
		t.Fatalf("non-verbose log recorded %d position entries", n)
	}
}
