package models

import "time"

// Outage is a closed-open downtime assertion written by the outage
// detection pipeline. A nil EndedAt means the outage is still ongoing.
type Outage struct {
	ID        int64      `json:"-" gorm:"primaryKey"`
	MonitorID int        `json:"-" gorm:"column:monitor_id;not null;index"`
	StartedAt time.Time  `json:"-" gorm:"column:started_at;not null"`
	EndedAt   *time.Time `json:"-" gorm:"column:ended_at"`
}

// TableName specifies the table name for Outage.
func (Outage) TableName() string {
	return "outages"
}
