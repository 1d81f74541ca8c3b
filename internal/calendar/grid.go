package calendar

import (
	"sort"
	"time"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/holiday"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// Entries without a time range sort after every valid "HH:MM" string.
const untimedSentinel = "~"

// MaxCellEntries caps how many entries a day-cell carries for display.
// Total keeps the true count for the "외 N건" indicator.
const MaxCellEntries = 2

// DayCell is one calendar-date unit of the grid.
type DayCell struct {
	Date       string           `json:"date"`
	Day        int              `json:"day"`
	InMonth    bool             `json:"in_month"`
	IsToday    bool             `json:"is_today"`
	IsSelected bool             `json:"is_selected"`
	Holiday    string           `json:"holiday,omitempty"`
	Entries    []model.Schedule `json:"entries"`
	Total      int              `json:"total"`
}

// Week is one grid row of seven cells, Sunday first.
type Week []DayCell

// MonthGrid builds the week-aligned grid covering the anchor's month, from
// the Sunday on or before the 1st to the Saturday on or after the last day.
// items must already have passed the visibility filter.
func MonthGrid(anchor time.Time, today, selected string, items []model.Schedule) []Week {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	return buildWindow(start, end, anchor.Month(), today, selected, items)
}

// WeekGrid builds a three-week window centered on the week containing the
// anchor date, aligned Sunday through Saturday like the month grid.
func WeekGrid(anchor time.Time, today, selected string, items []model.Schedule) []Week {
	weekStart := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	start := weekStart.AddDate(0, 0, -7)
	end := weekStart.AddDate(0, 0, 13)

	return buildWindow(start, end, anchor.Month(), today, selected, items)
}

func buildWindow(start, end time.Time, month time.Month, today, selected string, items []model.Schedule) []Week {
	byDate := partitionByDate(items)

	var weeks []Week
	var row Week
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		entries := byDate[key]
		sortEntries(entries)

		cell := DayCell{
			Date:       key,
			Day:        d.Day(),
			InMonth:    d.Month() == month,
			IsToday:    key == today,
			IsSelected: key == selected,
			Total:      len(entries),
		}
		if h, ok := holiday.Lookup(key); ok {
			cell.Holiday = h.Name
		}
		if len(entries) > MaxCellEntries {
			cell.Entries = entries[:MaxCellEntries]
		} else {
			cell.Entries = entries
		}

		row = append(row, cell)
		if len(row) == 7 {
			weeks = append(weeks, row)
			row = nil
		}
	}
	return weeks
}

// DayEntries returns the full sorted entry list for a single date, used by
// the day detail panel where the cell truncation does not apply.
func DayEntries(date string, items []model.Schedule) []model.Schedule {
	var out []model.Schedule
	for _, s := range items {
		if s.Date == date {
			out = append(out, s)
		}
	}
	sortEntries(out)
	return out
}

func partitionByDate(items []model.Schedule) map[string][]model.Schedule {
	m := make(map[string][]model.Schedule)
	for _, s := range items {
		m[s.Date] = append(m[s.Date], s)
	}
	return m
}

// sortEntries orders a cell's entries by time range ascending, lexically.
// Untimed entries take the sentinel and land after every timed one.
func sortEntries(entries []model.Schedule) {
	sort.SliceStable(entries, func(i, j int) bool {
		return sortKey(entries[i]) < sortKey(entries[j])
	})
}

func sortKey(s model.Schedule) string {
	if s.TimeRange == "" {
		return untimedSentinel
	}
	return s.TimeRange
}
