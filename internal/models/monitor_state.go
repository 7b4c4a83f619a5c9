package models

import "time"

// MonitorState is the scheduler's current-status row for a monitor. At
// most one row exists per monitor; the engine only ever reads it.
type MonitorState struct {
	MonitorID     int        `json:"-" gorm:"column:monitor_id;primaryKey"`
	Status        string     `json:"-" gorm:"column:status;not null"`
	LastCheckedAt *time.Time `json:"-" gorm:"column:last_checked_at"`
	LastLatencyMs *int       `json:"-" gorm:"column:last_latency_ms"`
}

// TableName specifies the table name for MonitorState.
func (MonitorState) TableName() string {
	return "monitor_state"
}

// LastCheckedAtUnix returns LastCheckedAt as seconds since the epoch, or
// nil when no check has ever landed.
func (s MonitorState) LastCheckedAtUnix() *int64 {
	if s.LastCheckedAt == nil {
		return nil
	}
	v := s.LastCheckedAt.Unix()
	return &v
}
