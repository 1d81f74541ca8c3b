package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
)

func scheduleRequest() *dto.UpsertScheduleRequest {
	return &dto.UpsertScheduleRequest{
		Title:    "학부모 공개수업",
		Date:     "2026-03-20",
		Category: string(model.CategoryEvent),
	}
}

func TestScheduleCreate(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.stores, zap.NewNop())

	rec, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", scheduleRequest())
	if err != nil {
		t.Fatal(err)
	}
	if rec.ScheduleID == "" {
		t.Error("created schedule has no ID")
	}
	if rec.AuthorEmail != "kim@sc2.gyo6.net" {
		t.Errorf("author = %q", rec.AuthorEmail)
	}

	list, err := svc.List(context.Background(), calendar.ViewAll, "")
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 {
		t.Errorf("list total = %d, want 1", list.Total)
	}
}

func TestScheduleCreateValidation(t *testing.T) {
	svc := NewScheduleService(newTestEnv().stores, zap.NewNop())

	bad := scheduleRequest()
	bad.Date = "2026/03/20"
	if _, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", bad); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}

	bad = scheduleRequest()
	bad.Category = "assembly"
	if _, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", bad); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestScheduleCreateDegradedKeepsRecord(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.stores, zap.NewNop())
	env.schedules.down = true

	rec, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", scheduleRequest())
	if !errors.Is(err, errs.ErrRemoteDegraded) {
		t.Fatalf("err = %v, want ErrRemoteDegraded", err)
	}
	if rec == nil || rec.ScheduleID == "" {
		t.Fatal("degraded create should still return the record")
	}

	list, err := svc.List(context.Background(), calendar.ViewAll, "")
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 {
		t.Errorf("locally kept write missing, total = %d", list.Total)
	}
}

func TestScheduleUpdatePermissions(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.stores, zap.NewNop())

	rec, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", scheduleRequest())
	if err != nil {
		t.Fatal(err)
	}

	edit := scheduleRequest()
	edit.Title = "학부모 공개수업 (변경)"

	if _, err := svc.Update(context.Background(), rec.ScheduleID, "lee@sc2.gyo6.net", model.RoleUser, edit); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("other user edit: err = %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.Update(context.Background(), rec.ScheduleID, "namdol01@sc2.gyo6.net", model.RoleAdmin, edit)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "학부모 공개수업 (변경)" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.AuthorEmail != "kim@sc2.gyo6.net" {
		t.Errorf("edit must preserve authorship, got %q", updated.AuthorEmail)
	}
}

func TestScheduleDelete(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.stores, zap.NewNop())

	rec, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", scheduleRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), rec.ScheduleID, "lee@sc2.gyo6.net", model.RoleUser); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(context.Background(), rec.ScheduleID, "kim@sc2.gyo6.net", model.RoleUser); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), rec.ScheduleID, "kim@sc2.gyo6.net", model.RoleUser); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("err = %v, want ErrScheduleNotFound", err)
	}
}

func TestScheduleMineNeedsLogin(t *testing.T) {
	svc := NewScheduleService(newTestEnv().stores, zap.NewNop())

	if _, err := svc.List(context.Background(), calendar.ViewMine, ""); !errors.Is(err, ErrMineNeedsLogin) {
		t.Errorf("err = %v, want ErrMineNeedsLogin", err)
	}
}

func TestScheduleGrid(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.stores, zap.NewNop())

	private := scheduleRequest()
	private.IsPrivate = true
	if _, err := svc.Create(context.Background(), "kim@sc2.gyo6.net", private); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Grid(context.Background(), &dto.GridQuery{
		Anchor: "2026-03-20", View: "month", Mode: "all",
	}, "kim@sc2.gyo6.net")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range resp.Weeks {
		if len(w) != 7 {
			t.Fatalf("week row has %d cells", len(w))
		}
		for _, c := range w {
			if c.Total != 0 {
				t.Error("private entry leaked into the all-mode grid")
			}
		}
	}

	mine, err := svc.Grid(context.Background(), &dto.GridQuery{
		Anchor: "2026-03-20", View: "week", Mode: "mine",
	}, "kim@sc2.gyo6.net")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine.Weeks) != 3 {
		t.Errorf("week view rows = %d, want 3", len(mine.Weeks))
	}
	found := false
	for _, w := range mine.Weeks {
		for _, c := range w {
			if c.Date == "2026-03-20" && c.Total == 1 {
				found = true
			}
		}
	}
	if !found {
		t.Error("own private entry should surface in mine mode")
	}
}
