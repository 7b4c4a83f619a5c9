package models

import "time"

// Monitor is the immutable identity and schedule of a monitored endpoint.
// The engine never writes it; rows are owned by the check scheduler.
type Monitor struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null"`
	IntervalSec int       `json:"interval_sec" gorm:"column:interval_sec;not null"`
	IsActive    bool      `json:"-" gorm:"column:is_active;not null;index"`
	CreatedAt   time.Time `json:"-" gorm:"column:created_at;not null"`
}

// TableName specifies the table name for Monitor.
func (Monitor) TableName() string {
	return "monitors"
}

// CreatedAtUnix returns CreatedAt as seconds since the epoch.
func (m Monitor) CreatedAtUnix() int64 {
	return m.CreatedAt.Unix()
}
