package models

import "time"

// CheckResult is one observation written by the external check scheduler.
// Its verdict applies to the half-open window
// [CheckedAt, CheckedAt+interval_sec) of its monitor.
type CheckResult struct {
	ID         int64     `json:"-" gorm:"primaryKey"`
	MonitorID  int       `json:"-" gorm:"column:monitor_id;not null;index:idx_check_monitor_time"`
	CheckedAt  time.Time `json:"-" gorm:"column:checked_at;not null;index:idx_check_monitor_time"`
	Status     string    `json:"-" gorm:"column:status;not null"`
	LatencyMs  *int      `json:"-" gorm:"column:latency_ms"`
}

// TableName specifies the table name for CheckResult.
func (CheckResult) TableName() string {
	return "check_results"
}
