// Package calendar implements the pure view logic behind the schedule
// screens: visibility filtering, the month/week day-cell grid, and the
// tabular projections used for spreadsheet export.
package calendar

import (
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// ViewMode selects between the shared feed and the viewer's own entries.
type ViewMode string

const (
	ViewAll  ViewMode = "all"
	ViewMine ViewMode = "mine"
)

// ValidViewMode reports whether m is a recognized view mode.
func ValidViewMode(m ViewMode) bool {
	return m == ViewAll || m == ViewMine
}

// VisibleSchedules applies the viewing rules to a schedule set.
//
// In "all" mode a record is visible iff it is not private. Private records
// of any author, the viewer's own included, are excluded: "all" is the
// shared feed, "mine" is where private items surface. There is no admin
// override.
//
// In "mine" mode a record is visible iff its author matches the viewer.
// An anonymous viewer (empty email) gets the empty set.
func VisibleSchedules(items []model.Schedule, mode ViewMode, viewerEmail string) []model.Schedule {
	out := make([]model.Schedule, 0, len(items))
	for _, s := range items {
		switch mode {
		case ViewMine:
			if viewerEmail != "" && s.AuthorEmail == viewerEmail {
				out = append(out, s)
			}
		default:
			if !s.IsPrivate {
				out = append(out, s)
			}
		}
	}
	return out
}

// CanModify reports whether the viewer may edit or delete a record with the
// given author. Permission goes to the author or to any administrator,
// independently of visibility.
func CanModify(authorEmail, viewerEmail string, role model.Role) bool {
	if role == model.RoleAdmin {
		return true
	}
	return viewerEmail != "" && authorEmail == viewerEmail
}
