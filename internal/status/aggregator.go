// Package status implements the fleet-wide /status aggregator: joining
// active monitors with their latest state, degrading stale state to
// unknown, attaching bounded heartbeat history, and rolling up one
// overall status for the whole fleet.
package status

import (
	"context"
	"fmt"

	"github.com/kabomba/statusengine/internal/store"
	"github.com/kabomba/statusengine/internal/uptime"
)

const (
	lookbackWindowSec    = 7 * 24 * 3600
	heartbeatsPerMonitor = 60
)

// Heartbeat is a recent check as presented to a client.
type Heartbeat struct {
	CheckedAt int64  `json:"checked_at"`
	Status    string `json:"status"`
	LatencyMs *int   `json:"latency_ms"`
}

// Monitor is one fleet member's current status plus recent history.
type Monitor struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	IsStale       bool        `json:"is_stale"`
	LastCheckedAt *int64      `json:"last_checked_at"`
	LastLatencyMs *int        `json:"last_latency_ms"`
	Heartbeats    []Heartbeat `json:"heartbeats"`
}

// Summary tallies monitor counts per exposed status.
type Summary struct {
	Up          int `json:"up"`
	Down        int `json:"down"`
	Maintenance int `json:"maintenance"`
	Paused      int `json:"paused"`
	Unknown     int `json:"unknown"`
}

// Fleet is the full /status response document.
type Fleet struct {
	GeneratedAt   int64     `json:"generated_at"`
	OverallStatus string    `json:"overall_status"`
	Summary       Summary   `json:"summary"`
	Monitors      []Monitor `json:"monitors"`
}

// Aggregate builds the fleet status document as of now (seconds since
// the epoch).
func Aggregate(ctx context.Context, st *store.Store, now int64) (*Fleet, error) {
	rangeEnd := uptime.FloorToMinute(now)
	lookbackStart := rangeEnd - lookbackWindowSec

	states, err := st.ActiveMonitorsWithState(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch active monitors: %w", err)
	}

	monitors := make([]Monitor, len(states))
	summary := Summary{}
	monitorIDs := make([]int, len(states))

	for i, s := range states {
		var lastCheckedAt *int64
		if s.LastCheckedAt != nil {
			v := s.LastCheckedAt.Unix()
			lastCheckedAt = &v
		}

		exposedStatus, isStale := uptime.ClassifyFreshness(now, s.Status, lastCheckedAt, int64(s.Monitor.IntervalSec))

		lastLatencyMs := s.LastLatencyMs
		if isStale {
			lastLatencyMs = nil
		}

		monitors[i] = Monitor{
			ID:            s.Monitor.ID,
			Name:          s.Monitor.Name,
			Type:          s.Monitor.Type,
			Status:        exposedStatus,
			IsStale:       isStale,
			LastCheckedAt: lastCheckedAt,
			LastLatencyMs: lastLatencyMs,
		}
		monitorIDs[i] = s.Monitor.ID
		tally(&summary, exposedStatus)
	}

	if len(monitorIDs) > 0 {
		heartbeats, err := st.RecentHeartbeats(ctx, monitorIDs, lookbackStart, heartbeatsPerMonitor)
		if err != nil {
			return nil, fmt.Errorf("fetch heartbeats: %w", err)
		}
		for i := range monitors {
			rows := heartbeats[monitors[i].ID]
			views := make([]Heartbeat, len(rows))
			for j, hb := range rows {
				views[j] = Heartbeat{CheckedAt: hb.CheckedAt, Status: hb.Status, LatencyMs: hb.LatencyMs}
			}
			monitors[i].Heartbeats = views
		}
	}

	return &Fleet{
		GeneratedAt:   now,
		OverallStatus: overallStatus(summary),
		Summary:       summary,
		Monitors:      monitors,
	}, nil
}

func tally(s *Summary, status string) {
	switch status {
	case "up":
		s.Up++
	case "down":
		s.Down++
	case "maintenance":
		s.Maintenance++
	case "paused":
		s.Paused++
	default:
		s.Unknown++
	}
}

// overallStatus applies the strict priority chain from the fleet
// summary: down > unknown > maintenance > up > paused > unknown.
func overallStatus(s Summary) string {
	switch {
	case s.Down > 0:
		return "down"
	case s.Unknown > 0:
		return "unknown"
	case s.Maintenance > 0:
		return "maintenance"
	case s.Up > 0:
		return "up"
	case s.Paused > 0:
		return "paused"
	default:
		return "unknown"
	}
}
