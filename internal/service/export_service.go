package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

var ErrExportGenerateFail = errors.New("파일 생성에 실패했습니다")

// ExportService renders the calendar into downloadable artifacts: the
// weekly and monthly xlsx reports and an iCalendar feed. Only public
// schedules are ever exported.
type ExportService interface {
	WeeklyXLSX(ctx context.Context, ref string) (*bytes.Buffer, string, error)
	MonthlyXLSX(ctx context.Context, anchor string) (*bytes.Buffer, string, error)
	ICSFeed(ctx context.Context) ([]byte, error)
}

type exportService struct {
	stores *Stores
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(stores *Stores, logger *zap.Logger) ExportService {
	return &exportService{stores: stores, logger: logger}
}

const (
	sheetTitleColor  = "#4472C4"
	holidayRowColor  = "#C00000"
	weeklySheetName  = "주간업무"
	monthlySheetName = "월간업무"
)

func (s *exportService) loadForExport(ctx context.Context) ([]model.Schedule, map[string]string) {
	schedules := s.stores.Schedules.FetchAll(ctx)
	names := calendar.AuthorIndex(s.stores.Users.FetchAll(ctx))
	return schedules, names
}

// WeeklyXLSX renders the Monday-Sunday week containing ref.
func (s *exportService) WeeklyXLSX(ctx context.Context, ref string) (*bytes.Buffer, string, error) {
	refDate, err := time.Parse(model.DateLayout, ref)
	if err != nil {
		return nil, "", ErrInvalidDate
	}

	schedules, names := s.loadForExport(ctx)
	rows := calendar.WeeklyRows(refDate, schedules, names)

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(weeklySheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(weeklySheetName, "A", "A", 14)
	f.SetColWidth(weeklySheetName, "B", "B", 24)
	f.SetColWidth(weeklySheetName, "C", "C", 48)
	f.SetColWidth(weeklySheetName, "D", "D", 18)

	titleStyle, bodyStyle, holidayStyle := s.sheetStyles(f)

	// merged title row
	f.SetCellValue(weeklySheetName, "A1",
		fmt.Sprintf("김천다수초등학교 주간업무 (%s ~ %s)", rows[0].Date, rows[6].Date))
	f.MergeCell(weeklySheetName, "A1", "D1")
	f.SetCellStyle(weeklySheetName, "A1", "D1", titleStyle)

	headers := []string{"날짜", "계기교육", "업무 내용", "담당자"}
	for i, h := range headers {
		f.SetCellValue(weeklySheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(weeklySheetName, "A2", "D2", titleStyle)

	for i, r := range rows {
		row := 3 + i
		f.SetCellValue(weeklySheetName, cell("A", row), r.Label)
		f.SetCellValue(weeklySheetName, cell("B", row), r.Observances)
		f.SetCellValue(weeklySheetName, cell("C", row), r.Entries)
		f.SetCellValue(weeklySheetName, cell("D", row), r.Authors)

		style := bodyStyle
		if i == 6 { // Sunday row
			style = holidayStyle
		}
		f.SetCellStyle(weeklySheetName, cell("A", row), cell("D", row), style)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("weekly export write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("주간업무_%s.xlsx", rows[0].Date)
	return buf, filename, nil
}

// MonthlyXLSX renders every day of the anchor's month with the holiday
// overlay; holiday and Sunday rows are highlighted in red.
func (s *exportService) MonthlyXLSX(ctx context.Context, anchor string) (*bytes.Buffer, string, error) {
	anchorDate, err := time.Parse(model.DateLayout, anchor)
	if err != nil {
		return nil, "", ErrInvalidDate
	}

	schedules, names := s.loadForExport(ctx)
	rows := calendar.MonthlyRows(anchorDate, schedules, names)

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(monthlySheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(monthlySheetName, "A", "A", 6)
	f.SetColWidth(monthlySheetName, "B", "B", 8)
	f.SetColWidth(monthlySheetName, "C", "C", 24)
	f.SetColWidth(monthlySheetName, "D", "D", 48)
	f.SetColWidth(monthlySheetName, "E", "E", 18)

	titleStyle, bodyStyle, holidayStyle := s.sheetStyles(f)

	f.SetCellValue(monthlySheetName, "A1",
		fmt.Sprintf("김천다수초등학교 월간업무 (%d년 %d월)", anchorDate.Year(), int(anchorDate.Month())))
	f.MergeCell(monthlySheetName, "A1", "E1")
	f.SetCellStyle(monthlySheetName, "A1", "E1", titleStyle)

	headers := []string{"일", "요일", "계기교육·공휴일", "업무 내용", "담당자"}
	for i, h := range headers {
		f.SetCellValue(monthlySheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(monthlySheetName, "A2", "E2", titleStyle)

	for i, r := range rows {
		row := 3 + i
		f.SetCellValue(monthlySheetName, cell("A", row), r.Day)
		f.SetCellValue(monthlySheetName, cell("B", row), r.Weekday)
		f.SetCellValue(monthlySheetName, cell("C", row), r.Observances)
		f.SetCellValue(monthlySheetName, cell("D", row), r.Entries)
		f.SetCellValue(monthlySheetName, cell("E", row), r.Authors)

		style := bodyStyle
		if r.IsPublicHoliday {
			style = holidayStyle
		}
		f.SetCellStyle(monthlySheetName, cell("A", row), cell("E", row), style)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("monthly export write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("월간업무_%d-%02d.xlsx", anchorDate.Year(), int(anchorDate.Month()))
	return buf, filename, nil
}

// ICSFeed serializes the public schedule set as an iCalendar feed so staff
// can subscribe from their own calendar apps. Entries with a parseable
// "HH:MM" time become one-hour events, the rest are all-day.
func (s *exportService) ICSFeed(ctx context.Context) ([]byte, error) {
	schedules := s.stores.Schedules.FetchAll(ctx)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//dasu-dashboard//KR")

	for _, rec := range schedules {
		if rec.IsPrivate {
			continue
		}
		date, err := time.Parse(model.DateLayout, rec.Date)
		if err != nil {
			continue
		}

		event := cal.AddEvent(rec.ScheduleID + "@dasu-dashboard")
		event.SetDtStampTime(time.Now())
		event.SetSummary(rec.Title)
		if rec.Location != "" {
			event.SetLocation(rec.Location)
		}
		if rec.Description != "" {
			event.SetDescription(rec.Description)
		}

		if start, err := time.Parse("15:04", firstTime(rec.TimeRange)); err == nil {
			at := time.Date(date.Year(), date.Month(), date.Day(),
				start.Hour(), start.Minute(), 0, 0, time.Local)
			event.SetStartAt(at)
			event.SetEndAt(at.Add(time.Hour))
		} else {
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		}
	}

	return []byte(cal.Serialize()), nil
}

// firstTime extracts the leading "HH:MM" of a free-text time range like
// "15:00" or "14:00~16:00".
func firstTime(timeRange string) string {
	if len(timeRange) >= 5 {
		return timeRange[:5]
	}
	return timeRange
}

func (s *exportService) sheetStyles(f *excelize.File) (title, body, holiday int) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{sheetTitleColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	body, _ = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	})
	holiday, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: holidayRowColor},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	})
	return title, body, holiday
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
