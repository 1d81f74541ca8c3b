package model

// Category classifies a calendar entry. The set is closed; anything the
// client sends outside of it is rejected before a write happens.
type Category string

const (
	CategoryOfficialDocument Category = "official-document"       // 공문
	CategoryDuty             Category = "duty"                    // 복무
	CategoryEvent            Category = "event"                   // 행사
	CategoryTraining         Category = "training"                // 연수
	CategoryMeeting          Category = "meeting"                 // 회의
	CategoryObservance       Category = "instructional-observance" // 계기교육
	CategoryOther            Category = "other"                   // 기타
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryOfficialDocument, CategoryDuty, CategoryEvent,
		CategoryTraining, CategoryMeeting, CategoryObservance, CategoryOther:
		return true
	}
	return false
}

// Schedule is a single calendar entry, stored in school_schedules.
//
// TimeRange, Location, Target, Description and AuthorEmail are optional;
// the empty string means absent. An absent AuthorEmail marks seed/legacy
// data and is treated as administrator-authored everywhere.
type Schedule struct {
	ScheduleID  string   `gorm:"column:schedule_id;type:varchar(64);primaryKey" json:"id"`
	Title       string   `gorm:"type:varchar(255);not null"                     json:"title"`
	Date        string   `gorm:"type:varchar(10);not null;index"                json:"date"`
	TimeRange   string   `gorm:"type:varchar(32);not null;default:''"          json:"time_range,omitempty"`
	Location    string   `gorm:"type:varchar(255);not null;default:''"         json:"location,omitempty"`
	Target      string   `gorm:"type:varchar(255);not null;default:''"         json:"target,omitempty"`
	Category    Category `gorm:"type:varchar(32);not null"                     json:"category"`
	Description string   `gorm:"type:text;not null;default:''"                 json:"description,omitempty"`
	AuthorEmail string   `gorm:"type:varchar(255);not null;default:'';index"   json:"author_email,omitempty"`
	IsPrivate   bool     `gorm:"not null;default:false"                        json:"is_private"`
	Timestamps
}

// TableName names the remote collection.
func (Schedule) TableName() string { return KindSchedule }

// RecordID implements store.Record.
func (s Schedule) RecordID() string { return s.ScheduleID }
