package model

import "time"

// Record kind names, shared by the remote table names and the local cache
// namespaces.
const (
	KindSchedule     = "school_schedules"
	KindTrainingPost = "training_posts"
	KindShortcut     = "app_shortcuts"
	KindUser         = "registered_users"
)

// DateLayout is the canonical calendar-date format used as the partition
// key for all day/week/month views.
const DateLayout = "2006-01-02"

// Timestamps are the audit columns every record carries.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
