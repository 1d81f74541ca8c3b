package calendar

import (
	"testing"
	"time"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

func anchorDate(s string) time.Time {
	t, _ := time.Parse(model.DateLayout, s)
	return t
}

func TestMonthGridCoversMonth(t *testing.T) {
	for _, anchor := range []string{"2026-02-15", "2026-03-01", "2026-12-31", "2024-02-10"} {
		a := anchorDate(anchor)
		weeks := MonthGrid(a, "", "", nil)

		seen := make(map[string]bool)
		for _, w := range weeks {
			if len(w) != 7 {
				t.Fatalf("%s: week row has %d cells, want 7", anchor, len(w))
			}
			for _, c := range w {
				if seen[c.Date] {
					t.Errorf("%s: duplicate cell %s", anchor, c.Date)
				}
				seen[c.Date] = true
			}
		}

		first := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
		days := first.AddDate(0, 1, -1).Day()
		for i := 0; i < days; i++ {
			key := first.AddDate(0, 0, i).Format(model.DateLayout)
			if !seen[key] {
				t.Errorf("%s: month date %s missing from grid", anchor, key)
			}
		}

		if weeks[0][0].Date > first.Format(model.DateLayout) {
			t.Errorf("%s: grid does not start on or before the 1st", anchor)
		}
	}
}

func TestMonthGridAlignment(t *testing.T) {
	// 2026-03-01 is a Sunday, so March 2026 starts flush with a week row.
	weeks := MonthGrid(anchorDate("2026-03-15"), "", "", nil)
	if weeks[0][0].Date != "2026-03-01" {
		t.Errorf("first cell = %s, want 2026-03-01", weeks[0][0].Date)
	}
	last := weeks[len(weeks)-1][6]
	if last.Date != "2026-04-04" {
		t.Errorf("last cell = %s, want 2026-04-04", last.Date)
	}
	if last.InMonth {
		t.Error("april spillover cell should be flagged out of month")
	}
}

func TestWeekGridWindow(t *testing.T) {
	weeks := WeekGrid(anchorDate("2026-03-11"), "", "", nil)
	if len(weeks) != 3 {
		t.Fatalf("week view has %d rows, want 3", len(weeks))
	}
	if weeks[0][0].Date != "2026-03-01" {
		t.Errorf("window starts at %s, want 2026-03-01", weeks[0][0].Date)
	}
	if weeks[1][3].Date != "2026-03-11" {
		t.Errorf("anchor should sit in the middle row, got %s", weeks[1][3].Date)
	}
}

func TestGridCellFlags(t *testing.T) {
	weeks := MonthGrid(anchorDate("2026-03-15"), "2026-03-11", "2026-03-11", nil)
	var cell DayCell
	for _, w := range weeks {
		for _, c := range w {
			if c.Date == "2026-03-11" {
				cell = c
			}
		}
	}
	if !cell.IsToday || !cell.IsSelected {
		t.Errorf("today and selected flags should both be set, got %+v", cell)
	}

	for _, w := range weeks {
		for _, c := range w {
			if c.Date == "2026-03-01" && c.Holiday != "삼일절" {
				t.Errorf("holiday annotation = %q, want 삼일절", c.Holiday)
			}
		}
	}
}

func TestCellEntrySortAndTruncation(t *testing.T) {
	items := []model.Schedule{
		{ScheduleID: "a", Title: "무시간 일정", Date: "2026-03-11"},
		{ScheduleID: "b", Title: "오후 회의", Date: "2026-03-11", TimeRange: "14:00"},
		{ScheduleID: "c", Title: "아침 조회", Date: "2026-03-11", TimeRange: "08:30"},
	}
	weeks := MonthGrid(anchorDate("2026-03-11"), "", "", items)

	var cell DayCell
	for _, w := range weeks {
		for _, c := range w {
			if c.Date == "2026-03-11" {
				cell = c
			}
		}
	}
	if cell.Total != 3 {
		t.Fatalf("total = %d, want 3", cell.Total)
	}
	if len(cell.Entries) != MaxCellEntries {
		t.Fatalf("displayed entries = %d, want %d", len(cell.Entries), MaxCellEntries)
	}
	if cell.Entries[0].ScheduleID != "c" || cell.Entries[1].ScheduleID != "b" {
		t.Errorf("timed entries out of order: %s, %s", cell.Entries[0].ScheduleID, cell.Entries[1].ScheduleID)
	}

	full := DayEntries("2026-03-11", items)
	if len(full) != 3 {
		t.Fatalf("day detail should not truncate, got %d", len(full))
	}
	if full[2].ScheduleID != "a" {
		t.Error("untimed entry should sort last")
	}
}
