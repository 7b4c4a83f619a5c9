// Package latency implements the /monitors/:id/latency aggregator:
// average and 95th-percentile latency over successful observations in
// a time range.
package latency

import (
	"context"
	"fmt"
	"sort"

	"github.com/kabomba/statusengine/internal/models"
	"github.com/kabomba/statusengine/internal/store"
	"github.com/kabomba/statusengine/internal/uptime"
)

// Point is one observation as returned in the points array, preserving
// datastore ordering and including every status (not just "up").
type Point struct {
	CheckedAt int64  `json:"checked_at"`
	Status    string `json:"status"`
	LatencyMs *int   `json:"latency_ms"`
}

// Result is the full /monitors/:id/latency response body.
type Result struct {
	Monitor struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"monitor"`
	Range        string  `json:"range"`
	RangeStartAt int64   `json:"range_start_at"`
	RangeEndAt   int64   `json:"range_end_at"`
	AvgLatencyMs *int    `json:"avg_latency_ms"`
	P95LatencyMs *int    `json:"p95_latency_ms"`
	Points       []Point `json:"points"`
}

// Aggregate fetches check points for monitor over rangeKeyword (which
// the caller must have already validated against the endpoint's enum)
// and computes avg/p95 latency over successful checks.
func Aggregate(ctx context.Context, st *store.Store, m *models.Monitor, rangeKeyword string, seconds int64, now int64) (*Result, error) {
	rangeEnd := uptime.FloorToMinute(now)
	rangeStart := rangeEnd - seconds

	rows, err := st.ChecksInRange(ctx, m.ID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch checks in range: %w", err)
	}

	points := make([]Point, len(rows))
	var successLatencies []int
	for i, r := range rows {
		points[i] = Point{CheckedAt: r.CheckedAt, Status: r.Status, LatencyMs: r.LatencyMs}
		if r.Status == "up" && r.LatencyMs != nil {
			successLatencies = append(successLatencies, *r.LatencyMs)
		}
	}

	res := &Result{
		Range:        rangeKeyword,
		RangeStartAt: rangeStart,
		RangeEndAt:   rangeEnd,
		Points:       points,
	}
	res.Monitor.ID = m.ID
	res.Monitor.Name = m.Name
	res.AvgLatencyMs = average(successLatencies)
	res.P95LatencyMs = p95(successLatencies)
	return res, nil
}

func average(latencies []int) *int {
	if len(latencies) == 0 {
		return nil
	}
	var sum int
	for _, v := range latencies {
		sum += v
	}
	avg := int(roundHalfAwayFromZero(float64(sum) / float64(len(latencies))))
	return &avg
}

func p95(latencies []int) *int {
	if len(latencies) == 0 {
		return nil
	}
	sorted := append([]int(nil), latencies...)
	sort.Ints(sorted)
	idx := uptime.PercentileIndex(len(sorted), 0.95)
	v := sorted[idx]
	return &v
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
