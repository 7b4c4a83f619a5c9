// Package uptime implements the pure interval algebra and classifiers
// that the fleet status, latency, and uptime aggregators build on.
package uptime

import "sort"

// Interval is a half-open [Start, End) range of seconds since the epoch.
type Interval struct {
	Start int64
	End   int64
}

func validInterval(iv Interval) bool {
	return iv.End > iv.Start
}

// Merge sorts intervals by Start ascending and folds overlapping or
// touching intervals together. Degenerate intervals (End <= Start) are
// dropped silently. Equal Start values collapse into the one with the
// larger End.
func Merge(intervals []Interval) []Interval {
	filtered := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if validInterval(iv) {
			filtered = append(filtered, iv)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start != filtered[j].Start {
			return filtered[i].Start < filtered[j].Start
		}
		return filtered[i].End > filtered[j].End
	})

	merged := make([]Interval, 0, len(filtered))
	for _, iv := range filtered {
		merged = PushMerged(merged, iv)
	}
	return merged
}

// PushMerged appends candidate to an in-construction merged set,
// coalescing with the last element when candidate.Start <= last.End.
// candidate must not precede the last element's Start (callers append
// in Start-ascending order); PushMerged does not re-sort.
func PushMerged(set []Interval, candidate Interval) []Interval {
	if !validInterval(candidate) {
		return set
	}
	if len(set) == 0 {
		return append(set, candidate)
	}
	last := &set[len(set)-1]
	if candidate.Start <= last.End {
		if candidate.End > last.End {
			last.End = candidate.End
		}
		return set
	}
	return append(set, candidate)
}

// Sum returns the total length in seconds of a merged interval set.
// Passing unmerged input still produces a value (max(0, end-start) per
// element) but overlapping elements would be double-counted; callers
// must Merge first.
func Sum(intervals []Interval) int64 {
	var total int64
	for _, iv := range intervals {
		if iv.End > iv.Start {
			total += iv.End - iv.Start
		}
	}
	return total
}

// Overlap computes the seconds of intersection between two merged,
// start-ascending interval sets via a two-pointer sweep.
func Overlap(a, b []Interval) int64 {
	var total int64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := max64(a[i].Start, b[j].Start)
		end := min64(a[i].End, b[j].End)
		if end > start {
			total += end - start
		}
		if a[i].End <= b[j].End {
			i++
		} else {
			j++
		}
	}
	return total
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
