package latency

import "testing"

func TestAverageNilOnEmpty(t *testing.T) {
	if got := average(nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestAverageRounds(t *testing.T) {
	got := average([]int{10, 11})
	if got == nil || *got != 11 {
		t.Fatalf("expected 11 (10.5 rounds up), got %v", got)
	}
}

func TestP95NilOnEmpty(t *testing.T) {
	if got := p95(nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestP95SingleElement(t *testing.T) {
	got := p95([]int{42})
	if got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestP95Ordering(t *testing.T) {
	// ceil(0.95*5)-1 = 4 (0-indexed) -> the largest of 5 sorted values.
	got := p95([]int{5, 1, 4, 2, 3})
	if got == nil || *got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}
