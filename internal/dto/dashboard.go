package dto

import (
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/weather"
)

// DashboardResponse is the landing-page payload: today's visible schedule,
// the latest must-read posts, the shortcut bar and the weather snapshot.
type DashboardResponse struct {
	Date      string             `json:"date"`
	Holiday   string             `json:"holiday,omitempty"`
	Today     []model.Schedule   `json:"today"`
	MustRead  []TrainingPostView `json:"must_read"`
	Shortcuts []model.Shortcut   `json:"shortcuts"`
	Weather   *weather.Report    `json:"weather,omitempty"`
}
