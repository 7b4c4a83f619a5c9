// Package uptimeapi implements the /monitors/:id/uptime aggregator:
// combining outage intervals and observation-gap intervals over a
// clamped time range into downtime/unknown/uptime seconds.
package uptimeapi

import (
	"context"
	"fmt"

	"github.com/kabomba/statusengine/internal/models"
	"github.com/kabomba/statusengine/internal/store"
	"github.com/kabomba/statusengine/internal/uptime"
)

// Result is the full /monitors/:id/uptime response body.
type Result struct {
	Monitor struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"monitor"`
	Range        string  `json:"range"`
	RangeStartAt int64   `json:"range_start_at"`
	RangeEndAt   int64   `json:"range_end_at"`
	TotalSec     int64   `json:"total_sec"`
	DowntimeSec  int64   `json:"downtime_sec"`
	UnknownSec   int64   `json:"unknown_sec"`
	UptimeSec    int64   `json:"uptime_sec"`
	UptimePct    float64 `json:"uptime_pct"`
}

// Aggregate computes availability for m over rangeKeyword (already
// validated by the caller against the endpoint's enum), clamped so the
// range never extends before the monitor's created_at.
func Aggregate(ctx context.Context, st *store.Store, m *models.Monitor, rangeKeyword string, seconds int64, now int64) (*Result, error) {
	rangeEnd := uptime.FloorToMinute(now)
	rangeStart := clampRangeStart(rangeEnd-seconds, m.CreatedAtUnix())

	totalSec := rangeEnd - rangeStart
	if totalSec < 0 {
		totalSec = 0
	}

	outages, err := st.OutagesOverlapping(ctx, m.ID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch outages: %w", err)
	}
	downtimeIntervals := clampOutages(outages, rangeStart, rangeEnd)

	intervalSec := int64(m.IntervalSec)
	checks, err := st.ChecksForGapClassification(ctx, m.ID, rangeStart, rangeEnd, intervalSec)
	if err != nil {
		return nil, fmt.Errorf("fetch checks for gap classification: %w", err)
	}

	downtimeSec, unknownSec, uptimeSec, uptimePct := computeAvailability(totalSec, intervalSec, rangeStart, rangeEnd, downtimeIntervals, checks)

	res := &Result{
		Range:        rangeKeyword,
		RangeStartAt: rangeStart,
		RangeEndAt:   rangeEnd,
		TotalSec:     totalSec,
		DowntimeSec:  downtimeSec,
		UnknownSec:   unknownSec,
		UptimeSec:    uptimeSec,
		UptimePct:    uptimePct,
	}
	res.Monitor.ID = m.ID
	res.Monitor.Name = m.Name
	return res, nil
}

// clampRangeStart ensures a range never extends before the monitor's
// existence: requestedStart wins unless the monitor was created later.
func clampRangeStart(requestedStart, createdAt int64) int64 {
	if createdAt > requestedStart {
		return createdAt
	}
	return requestedStart
}

// computeAvailability is the pure core of the uptime aggregator:
// classify observation gaps, subtract their overlap with downtime so
// downtime is never double-counted, and derive the three disjoint
// second counts plus the uptime percentage.
func computeAvailability(totalSec, intervalSec, rangeStart, rangeEnd int64, downtimeIntervals []uptime.Interval, checks []uptime.Check) (downtimeSec, unknownSec, uptimeSec int64, uptimePct float64) {
	downtimeSec = uptime.Sum(downtimeIntervals)

	unknownIntervals := uptime.ClassifyGaps(rangeStart, rangeEnd, intervalSec, checks)
	unknownSec = uptime.Sum(unknownIntervals) - uptime.Overlap(unknownIntervals, downtimeIntervals)
	if unknownSec < 0 {
		unknownSec = 0
	}

	unavailableSec := downtimeSec + unknownSec
	if unavailableSec > totalSec {
		unavailableSec = totalSec
	}
	uptimeSec = totalSec - unavailableSec
	if uptimeSec < 0 {
		uptimeSec = 0
	}

	if totalSec > 0 {
		uptimePct = float64(uptimeSec) / float64(totalSec) * 100
	}
	return downtimeSec, unknownSec, uptimeSec, uptimePct
}

// clampOutages clips each outage to [rangeStart, rangeEnd), treats a
// nil EndedAt as ongoing through rangeEnd, drops empty results, and
// merges the survivors.
func clampOutages(outages []models.Outage, rangeStart, rangeEnd int64) []uptime.Interval {
	clamped := make([]uptime.Interval, 0, len(outages))
	for _, o := range outages {
		start := o.StartedAt.Unix()
		if start < rangeStart {
			start = rangeStart
		}
		end := rangeEnd
		if o.EndedAt != nil {
			end = o.EndedAt.Unix()
			if end > rangeEnd {
				end = rangeEnd
			}
		}
		if end <= start {
			continue
		}
		clamped = append(clamped, uptime.Interval{Start: start, End: end})
	}
	return uptime.Merge(clamped)
}
