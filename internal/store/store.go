// Package store is the engine's only datastore boundary: every query
// the aggregators need against monitors, monitor_state, check_results,
// and outages lives here, read-only, behind a single GORM handle.
package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kabomba/statusengine/internal/models"
	"github.com/kabomba/statusengine/internal/uptime"
)

// Store is the read-only datastore boundary for the status engine.
type Store struct {
	db *gorm.DB
}

// New wraps an existing GORM connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping issues one trivial read to confirm the datastore is reachable.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

// MonitorState pairs an active monitor with its current state row (if
// any — a monitor the scheduler has never touched has no state row).
type MonitorState struct {
	Monitor       models.Monitor
	Status        string
	LastCheckedAt *time.Time
	LastLatencyMs *int
}

// ActiveMonitorsWithState fetches every active monitor, then batch-fetches
// their monitor_state rows by id and joins them in Go — a monitor the
// scheduler has never touched simply has no row on the second query.
func (s *Store) ActiveMonitorsWithState(ctx context.Context) ([]MonitorState, error) {
	var monitors []models.Monitor
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&monitors).Error; err != nil {
		return nil, fmt.Errorf("query active monitors: %w", err)
	}

	ids := make([]int, len(monitors))
	for i, m := range monitors {
		ids[i] = m.ID
	}

	states := make(map[int]models.MonitorState, len(ids))
	if len(ids) > 0 {
		var rows []models.MonitorState
		if err := s.db.WithContext(ctx).
			Where("monitor_id IN ?", ids).
			Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("query monitor state: %w", err)
		}
		for _, r := range rows {
			states[r.MonitorID] = r
		}
	}

	result := make([]MonitorState, len(monitors))
	for i, m := range monitors {
		status := "unknown"
		var lastCheckedAt *time.Time
		var lastLatencyMs *int
		if st, ok := states[m.ID]; ok {
			status = st.Status
			lastCheckedAt = st.LastCheckedAt
			lastLatencyMs = st.LastLatencyMs
		}
		result[i] = MonitorState{
			Monitor:       m,
			Status:        status,
			LastCheckedAt: lastCheckedAt,
			LastLatencyMs: lastLatencyMs,
		}
	}
	return result, nil
}

// Heartbeat is a recent check as presented in the /status response.
type Heartbeat struct {
	MonitorID int
	CheckedAt int64
	Status    string
	LatencyMs *int
}

// RecentHeartbeats fetches up to limit most-recent checks per monitor
// within [since, +inf) across the whole given set of monitor ids in a
// single windowed query, returned in chronological (oldest-first) order
// per monitor.
func (s *Store) RecentHeartbeats(ctx context.Context, monitorIDs []int, since int64, limit int) (map[int][]Heartbeat, error) {
	if len(monitorIDs) == 0 {
		return map[int][]Heartbeat{}, nil
	}

	var rows []struct {
		MonitorID int
		CheckedAt time.Time
		Status    string
		LatencyMs *int
	}

	err := s.db.WithContext(ctx).Raw(`
		SELECT monitor_id, checked_at, status, latency_ms FROM (
			SELECT monitor_id, checked_at, status, latency_ms,
				ROW_NUMBER() OVER (PARTITION BY monitor_id ORDER BY checked_at DESC) AS rn
			FROM check_results
			WHERE monitor_id IN ? AND checked_at >= ?
		) ranked
		WHERE rn <= ?
		ORDER BY monitor_id ASC, checked_at ASC
	`, monitorIDs, time.Unix(since, 0).UTC(), limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query recent heartbeats: %w", err)
	}

	byMonitor := make(map[int][]Heartbeat, len(monitorIDs))
	for _, r := range rows {
		byMonitor[r.MonitorID] = append(byMonitor[r.MonitorID], Heartbeat{
			MonitorID: r.MonitorID,
			CheckedAt: r.CheckedAt.Unix(),
			Status:    r.Status,
			LatencyMs: r.LatencyMs,
		})
	}
	return byMonitor, nil
}

// ActiveMonitorByID fetches a single active monitor, or gorm.ErrRecordNotFound.
func (s *Store) ActiveMonitorByID(ctx context.Context, id int) (*models.Monitor, error) {
	var m models.Monitor
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CheckPoint is one observation as returned to the latency endpoint.
type CheckPoint struct {
	CheckedAt int64
	Status    string
	LatencyMs *int
}

// ChecksInRange fetches check points with checked_at in [start, end]
// (both inclusive), ordered ascending by checked_at.
func (s *Store) ChecksInRange(ctx context.Context, monitorID int, start, end int64) ([]CheckPoint, error) {
	var rows []models.CheckResult
	err := s.db.WithContext(ctx).
		Where("monitor_id = ? AND checked_at >= ? AND checked_at <= ?",
			monitorID, time.Unix(start, 0).UTC(), time.Unix(end, 0).UTC()).
		Order("checked_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query checks in range: %w", err)
	}

	points := make([]CheckPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, CheckPoint{
			CheckedAt: r.CheckedAt.Unix(),
			Status:    r.Status,
			LatencyMs: r.LatencyMs,
		})
	}
	return points, nil
}

// ChecksForGapClassification fetches checks in [rangeStart-intervalSec,
// rangeEnd), the window the observation gap classifier needs to recover
// the carry-over verdict straddling rangeStart.
func (s *Store) ChecksForGapClassification(ctx context.Context, monitorID int, rangeStart, rangeEnd, intervalSec int64) ([]uptime.Check, error) {
	var rows []models.CheckResult
	err := s.db.WithContext(ctx).
		Where("monitor_id = ? AND checked_at >= ? AND checked_at < ?",
			monitorID, time.Unix(rangeStart-intervalSec, 0).UTC(), time.Unix(rangeEnd, 0).UTC()).
		Order("checked_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query checks for gap classification: %w", err)
	}

	checks := make([]uptime.Check, 0, len(rows))
	for _, r := range rows {
		checks = append(checks, uptime.Check{CheckedAt: r.CheckedAt.Unix(), Status: r.Status})
	}
	return checks, nil
}

// OutagesOverlapping fetches outages overlapping [rangeStart, rangeEnd),
// including ongoing ones (ended_at IS NULL).
func (s *Store) OutagesOverlapping(ctx context.Context, monitorID int, rangeStart, rangeEnd int64) ([]models.Outage, error) {
	var rows []models.Outage
	err := s.db.WithContext(ctx).
		Where("monitor_id = ? AND started_at < ? AND (ended_at IS NULL OR ended_at > ?)",
			monitorID, time.Unix(rangeEnd, 0).UTC(), time.Unix(rangeStart, 0).UTC()).
		Order("started_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query overlapping outages: %w", err)
	}
	return rows, nil
}
