package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

func exportEnv() *testEnv {
	env := newTestEnv()
	env.schedules.items = []model.Schedule{
		{ScheduleID: "x1", Title: "주간학습안내 제출", Date: "2026-03-02", Category: model.CategoryOfficialDocument, AuthorEmail: "kim@sc2.gyo6.net"},
		{ScheduleID: "x2", Title: "개인 메모", Date: "2026-03-03", Category: model.CategoryOther, IsPrivate: true, AuthorEmail: "kim@sc2.gyo6.net"},
		{ScheduleID: "x3", Title: "교직원 월례회의", Date: "2026-03-05", TimeRange: "15:00", Location: "시청각실", Category: model.CategoryMeeting},
	}
	env.users.items = []model.User{
		{Email: "kim@sc2.gyo6.net", Name: "김교사", Role: model.RoleUser},
	}
	return env
}

func isXLSX(data []byte) bool {
	return len(data) > 2 && data[0] == 0x50 && data[1] == 0x4B
}

func TestWeeklyXLSX(t *testing.T) {
	svc := NewExportService(exportEnv().stores, zap.NewNop())

	buf, filename, err := svc.WeeklyXLSX(context.Background(), "2026-03-04")
	if err != nil {
		t.Fatal(err)
	}
	if !isXLSX(buf.Bytes()) {
		t.Error("weekly export is not a valid xlsx payload")
	}
	if filename != "주간업무_2026-03-02.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}

func TestWeeklyXLSXInvalidDate(t *testing.T) {
	svc := NewExportService(exportEnv().stores, zap.NewNop())

	if _, _, err := svc.WeeklyXLSX(context.Background(), "03/04/2026"); err != ErrInvalidDate {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestMonthlyXLSX(t *testing.T) {
	svc := NewExportService(exportEnv().stores, zap.NewNop())

	buf, filename, err := svc.MonthlyXLSX(context.Background(), "2026-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if !isXLSX(buf.Bytes()) {
		t.Error("monthly export is not a valid xlsx payload")
	}
	if filename != "월간업무_2026-03.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}

func TestICSFeed(t *testing.T) {
	svc := NewExportService(exportEnv().stores, zap.NewNop())

	data, err := svc.ICSFeed(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	feed := string(data)

	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Fatal("feed is not an iCalendar document")
	}
	if !strings.Contains(feed, "주간학습안내 제출") {
		t.Error("public entry missing from the feed")
	}
	if !strings.Contains(feed, "시청각실") {
		t.Error("location missing from the timed event")
	}
	if strings.Contains(feed, "개인 메모") {
		t.Error("private entry leaked into the feed")
	}
}
