package dto

import (
	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// UpsertScheduleRequest creates or fully replaces a calendar entry.
// Optional annotations default to the empty string.
type UpsertScheduleRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeRange   string `json:"time_range"`
	Location    string `json:"location"`
	Target      string `json:"target"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

// GridQuery selects the calendar window and viewing mode.
type GridQuery struct {
	Anchor   string `form:"anchor"`
	View     string `form:"view,default=month"`
	Mode     string `form:"mode,default=all"`
	Selected string `form:"selected"`
}

type GridResponse struct {
	Anchor string          `json:"anchor"`
	View   string          `json:"view"`
	Mode   string          `json:"mode"`
	Weeks  []calendar.Week `json:"weeks"`
}

type DayResponse struct {
	Date    string           `json:"date"`
	Holiday string           `json:"holiday,omitempty"`
	Entries []model.Schedule `json:"entries"`
}

type ScheduleListResponse struct {
	Items []model.Schedule `json:"items"`
	Total int              `json:"total"`
}
