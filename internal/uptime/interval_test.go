package uptime

import (
	"reflect"
	"testing"
)

func TestMergeIdempotent(t *testing.T) {
	cases := [][]Interval{
		{{Start: 0, End: 10}, {Start: 5, End: 15}, {Start: 20, End: 30}},
		{{Start: 0, End: 10}, {Start: 10, End: 20}},
		{},
		{{Start: 5, End: 5}, {Start: 1, End: 3}},
	}

	for _, xs := range cases {
		once := Merge(xs)
		twice := Merge(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("merge not idempotent: once=%v twice=%v", once, twice)
		}
		for i := 1; i < len(once); i++ {
			if once[i].Start <= once[i-1].End {
				t.Fatalf("merged set not disjoint/ascending: %v", once)
			}
		}
	}
}

func TestMergeTieBreak(t *testing.T) {
	got := Merge([]Interval{{Start: 0, End: 5}, {Start: 0, End: 10}})
	want := []Interval{{Start: 0, End: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMergeDropsDegenerate(t *testing.T) {
	got := Merge([]Interval{{Start: 5, End: 5}, {Start: 10, End: 1}, {Start: 0, End: 3}})
	want := []Interval{{Start: 0, End: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSumEqualsMeasure(t *testing.T) {
	merged := Merge([]Interval{{Start: 0, End: 10}, {Start: 20, End: 25}})
	var want int64
	for _, iv := range merged {
		want += iv.End - iv.Start
	}
	if got := Sum(merged); got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestSumOfMergeNeverExceedsSumOfInput(t *testing.T) {
	xs := []Interval{{Start: 0, End: 10}, {Start: 5, End: 15}, {Start: 100, End: 110}}
	var rawSum int64
	for _, iv := range xs {
		rawSum += iv.End - iv.Start
	}
	if got := Sum(Merge(xs)); got > rawSum {
		t.Fatalf("Sum(Merge(xs))=%d exceeds Sum(xs)=%d", got, rawSum)
	}
}

func TestOverlapSymmetry(t *testing.T) {
	a := Merge([]Interval{{Start: 0, End: 10}, {Start: 20, End: 30}})
	b := Merge([]Interval{{Start: 5, End: 25}})
	if got, want := Overlap(a, b), Overlap(b, a); got != want {
		t.Fatalf("overlap not symmetric: %d vs %d", got, want)
	}
}

func TestOverlapValue(t *testing.T) {
	a := []Interval{{Start: 0, End: 10}, {Start: 20, End: 30}}
	b := []Interval{{Start: 5, End: 25}}
	if got, want := Overlap(a, b), int64(5+5); got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestPushMergedCoalesces(t *testing.T) {
	set := []Interval{{Start: 0, End: 10}}
	set = PushMerged(set, Interval{Start: 5, End: 20})
	want := []Interval{{Start: 0, End: 20}}
	if !reflect.DeepEqual(set, want) {
		t.Fatalf("got %v want %v", set, want)
	}
}

func TestPushMergedAppendsWhenDisjoint(t *testing.T) {
	set := []Interval{{Start: 0, End: 10}}
	set = PushMerged(set, Interval{Start: 20, End: 30})
	want := []Interval{{Start: 0, End: 10}, {Start: 20, End: 30}}
	if !reflect.DeepEqual(set, want) {
		t.Fatalf("got %v want %v", set, want)
	}
}
