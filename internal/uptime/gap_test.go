package uptime

import "testing"

func TestClassifyGapsEmptyRange(t *testing.T) {
	if got := ClassifyGaps(100, 100, 60, nil); got != nil {
		t.Fatalf("expected nil for empty range, got %v", got)
	}
	if got := ClassifyGaps(200, 100, 60, nil); got != nil {
		t.Fatalf("expected nil when rangeEnd < rangeStart, got %v", got)
	}
}

func TestClassifyGapsDegenerateInterval(t *testing.T) {
	got := ClassifyGaps(1000, 1600, 0, []Check{{CheckedAt: 970, Status: "up"}})
	want := []Interval{{Start: 1000, End: 1600}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v want %v", got, want)
	}
}

// S2 — continuous up: checks every 60s inside a 600s range, no gaps.
func TestClassifyGapsContinuousUp(t *testing.T) {
	var checks []Check
	for ts := int64(940); ts <= 1540; ts += 60 {
		checks = append(checks, Check{CheckedAt: ts, Status: "up"})
	}
	got := ClassifyGaps(1000, 1600, 60, checks)
	if len(got) != 0 {
		t.Fatalf("expected no gaps, got %v", got)
	}
}

// S3 — verdict expiry: one check at 900, interval 60, range starts at
// 1000 so validUntil=960 has already elapsed before the range begins.
func TestClassifyGapsVerdictExpiredBeforeRange(t *testing.T) {
	got := ClassifyGaps(1000, 1600, 60, []Check{{CheckedAt: 900, Status: "up"}})
	want := []Interval{{Start: 1000, End: 1600}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v want %v", got, want)
	}
}

// S4 — straddling verdict: check at 970, validUntil=1030, so [1000,1030)
// is covered and [1030,1600) is unknown.
func TestClassifyGapsStraddlingVerdict(t *testing.T) {
	got := ClassifyGaps(1000, 1600, 60, []Check{{CheckedAt: 970, Status: "up"}})
	want := []Interval{{Start: 1030, End: 1600}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v want %v", got, want)
	}
	if sum := Sum(got); sum != 570 {
		t.Fatalf("expected unknown_sec=570, got %d", sum)
	}
}

func TestClassifyGapsUnknownVerdictWithinCoverage(t *testing.T) {
	got := ClassifyGaps(1000, 1600, 60, []Check{{CheckedAt: 970, Status: "unknown"}})
	want := []Interval{{Start: 1000, End: 1600}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestClassifyGapsNoObservationAtAll(t *testing.T) {
	got := ClassifyGaps(1000, 4600, 60, nil)
	want := []Interval{{Start: 1000, End: 4600}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestClassifyGapsIgnoresChecksAtOrAfterRangeEnd(t *testing.T) {
	got := ClassifyGaps(1000, 1060, 60, []Check{
		{CheckedAt: 1000, Status: "up"},
		{CheckedAt: 1060, Status: "up"}, // exactly rangeEnd: stop, not consumed
	})
	if len(got) != 0 {
		t.Fatalf("expected no gaps, got %v", got)
	}
}
