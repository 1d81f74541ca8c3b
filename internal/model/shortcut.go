package model

// Shortcut is an external link on the shortcut bar, stored in app_shortcuts.
// There is one admin-managed global set visible to everyone.
type Shortcut struct {
	ShortcutID string `gorm:"column:shortcut_id;type:varchar(64);primaryKey" json:"id"`
	Label      string `gorm:"type:varchar(100);not null"                     json:"label"`
	URL        string `gorm:"type:text;not null"                             json:"url"`
	Timestamps
}

// TableName names the remote collection.
func (Shortcut) TableName() string { return KindShortcut }

// RecordID implements store.Record.
func (s Shortcut) RecordID() string { return s.ShortcutID }
