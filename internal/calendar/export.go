package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/holiday"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// AdminDisplayName labels entries with no author, i.e. seed or legacy data.
const AdminDisplayName = "관리자"

var weekdayKo = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// WeeklyRow is one day of the weekly report, Monday through Sunday.
type WeeklyRow struct {
	Date        string
	Label       string
	Observances string
	Entries     string
	Authors     string
}

// MonthlyRow is one day of the monthly report with the holiday overlay.
type MonthlyRow struct {
	Date            string
	Day             int
	Weekday         string
	Observances     string
	Entries         string
	Authors         string
	IsPublicHoliday bool
}

// AuthorIndex builds the email-to-name lookup used to resolve schedule
// authors into display names.
func AuthorIndex(users []model.User) map[string]string {
	idx := make(map[string]string, len(users))
	for _, u := range users {
		idx[u.Email] = u.Name
	}
	return idx
}

// WeeklyRows projects the Monday-Sunday week containing ref into seven
// report rows. Private schedules never appear in an export.
func WeeklyRows(ref time.Time, items []model.Schedule, names map[string]string) []WeeklyRow {
	items = exportable(items)
	byDate := partitionByDate(items)

	start := ref.AddDate(0, 0, -int((ref.Weekday()+6)%7))
	rows := make([]WeeklyRow, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(model.DateLayout)
		entries := byDate[key]
		sortEntries(entries)

		rows = append(rows, WeeklyRow{
			Date:        key,
			Label:       fmt.Sprintf("%d월 %d일 (%s)", int(d.Month()), d.Day(), weekdayKo[d.Weekday()]),
			Observances: joinObservances("", entries),
			Entries:     renderEntries(entries),
			Authors:     resolveAuthors(entries, names),
		})
	}
	return rows
}

// MonthlyRows projects every day of the anchor's month into report rows.
// The observance column is prefixed by the holiday name when the date is in
// the holiday table; IsPublicHoliday flags statutory holidays and Sundays
// for red highlighting in the rendered sheet.
func MonthlyRows(anchor time.Time, items []model.Schedule, names map[string]string) []MonthlyRow {
	items = exportable(items)
	byDate := partitionByDate(items)

	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	rows := make([]MonthlyRow, 0, days)
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i)
		key := d.Format(model.DateLayout)
		entries := byDate[key]
		sortEntries(entries)

		holidayName := ""
		if h, ok := holiday.Lookup(key); ok {
			holidayName = h.Name
		}

		rows = append(rows, MonthlyRow{
			Date:            key,
			Day:             d.Day(),
			Weekday:         weekdayKo[d.Weekday()],
			Observances:     joinObservances(holidayName, entries),
			Entries:         renderEntries(entries),
			Authors:         resolveAuthors(entries, names),
			IsPublicHoliday: holiday.IsStatutory(key) || d.Weekday() == time.Sunday,
		})
	}
	return rows
}

func exportable(items []model.Schedule) []model.Schedule {
	out := make([]model.Schedule, 0, len(items))
	for _, s := range items {
		if !s.IsPrivate {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// joinObservances comma-joins instructional-observance titles, with an
// optional holiday name in front.
func joinObservances(holidayName string, entries []model.Schedule) string {
	parts := make([]string, 0, len(entries)+1)
	if holidayName != "" {
		parts = append(parts, holidayName)
	}
	for _, s := range entries {
		if s.Category == model.CategoryObservance {
			parts = append(parts, s.Title)
		}
	}
	return strings.Join(parts, ", ")
}

// renderEntries formats non-observance entries as "제목 (시간, 장소, 대상)"
// with blank details omitted, one entry per line.
func renderEntries(entries []model.Schedule) string {
	var lines []string
	for _, s := range entries {
		if s.Category == model.CategoryObservance {
			continue
		}
		var details []string
		for _, v := range []string{s.TimeRange, s.Location, s.Target} {
			if v != "" {
				details = append(details, v)
			}
		}
		if len(details) > 0 {
			lines = append(lines, fmt.Sprintf("%s (%s)", s.Title, strings.Join(details, ", ")))
		} else {
			lines = append(lines, s.Title)
		}
	}
	return strings.Join(lines, "\n")
}

// resolveAuthors comma-joins the de-duplicated display names of a day's
// authors, in first-seen order. An email resolves to the registered name,
// then to its local-part; entries without an author count as 관리자.
func resolveAuthors(entries []model.Schedule, names map[string]string) string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range entries {
		name := resolveAuthor(s.AuthorEmail, names)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return strings.Join(out, ", ")
}

func resolveAuthor(email string, names map[string]string) string {
	if email == "" {
		return AdminDisplayName
	}
	if name, ok := names[email]; ok && name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
