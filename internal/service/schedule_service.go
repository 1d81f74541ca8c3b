package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/holiday"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

var (
	ErrScheduleNotFound = errors.New("일정을 찾을 수 없습니다")
	ErrInvalidDate      = errors.New("날짜 형식이 올바르지 않습니다")
	ErrInvalidCategory  = errors.New("알 수 없는 일정 구분입니다")
	ErrInvalidViewMode  = errors.New("알 수 없는 보기 모드입니다")
	ErrMineNeedsLogin   = errors.New("내 일정 보기는 로그인이 필요합니다")
	ErrPermissionDenied = errors.New("작성자 또는 관리자만 수정할 수 있습니다")
)

// ScheduleService covers the calendar: listing, grid views, day detail and
// entry CRUD.
type ScheduleService interface {
	List(ctx context.Context, mode calendar.ViewMode, viewerEmail string) (*dto.ScheduleListResponse, error)
	Grid(ctx context.Context, q *dto.GridQuery, viewerEmail string) (*dto.GridResponse, error)
	Day(ctx context.Context, date string, mode calendar.ViewMode, viewerEmail string) (*dto.DayResponse, error)
	Create(ctx context.Context, authorEmail string, req *dto.UpsertScheduleRequest) (*model.Schedule, error)
	Update(ctx context.Context, id, viewerEmail string, role model.Role, req *dto.UpsertScheduleRequest) (*model.Schedule, error)
	Delete(ctx context.Context, id, viewerEmail string, role model.Role) error
}

type scheduleService struct {
	stores *Stores
	logger *zap.Logger
	now    func() time.Time
}

// NewScheduleService creates a ScheduleService instance.
func NewScheduleService(stores *Stores, logger *zap.Logger) ScheduleService {
	return &scheduleService{stores: stores, logger: logger, now: time.Now}
}

func (s *scheduleService) visible(ctx context.Context, mode calendar.ViewMode, viewerEmail string) ([]model.Schedule, error) {
	if !calendar.ValidViewMode(mode) {
		return nil, ErrInvalidViewMode
	}
	if mode == calendar.ViewMine && viewerEmail == "" {
		return nil, ErrMineNeedsLogin
	}
	items := s.stores.Schedules.FetchAll(ctx)
	return calendar.VisibleSchedules(items, mode, viewerEmail), nil
}

func (s *scheduleService) List(ctx context.Context, mode calendar.ViewMode, viewerEmail string) (*dto.ScheduleListResponse, error) {
	items, err := s.visible(ctx, mode, viewerEmail)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleListResponse{Items: items, Total: len(items)}, nil
}

func (s *scheduleService) Grid(ctx context.Context, q *dto.GridQuery, viewerEmail string) (*dto.GridResponse, error) {
	anchor := s.now()
	if q.Anchor != "" {
		parsed, err := time.Parse(model.DateLayout, q.Anchor)
		if err != nil {
			return nil, ErrInvalidDate
		}
		anchor = parsed
	}

	items, err := s.visible(ctx, calendar.ViewMode(q.Mode), viewerEmail)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(model.DateLayout)
	var weeks []calendar.Week
	switch q.View {
	case "week":
		weeks = calendar.WeekGrid(anchor, today, q.Selected, items)
	case "", "month":
		weeks = calendar.MonthGrid(anchor, today, q.Selected, items)
	default:
		return nil, ErrInvalidViewMode
	}

	return &dto.GridResponse{
		Anchor: anchor.Format(model.DateLayout),
		View:   q.View,
		Mode:   q.Mode,
		Weeks:  weeks,
	}, nil
}

func (s *scheduleService) Day(ctx context.Context, date string, mode calendar.ViewMode, viewerEmail string) (*dto.DayResponse, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	items, err := s.visible(ctx, mode, viewerEmail)
	if err != nil {
		return nil, err
	}

	resp := &dto.DayResponse{
		Date:    date,
		Entries: calendar.DayEntries(date, items),
	}
	if h, ok := holiday.Lookup(date); ok {
		resp.Holiday = h.Name
	}
	return resp, nil
}

func (s *scheduleService) Create(ctx context.Context, authorEmail string, req *dto.UpsertScheduleRequest) (*model.Schedule, error) {
	record, err := buildSchedule(uuid.New().String(), authorEmail, req)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt

	saved, err := s.stores.Schedules.Upsert(ctx, record)
	return &saved, err
}

// Update is a full-record replace keyed by the original ID. Authorship is
// preserved from the stored record, not taken from the editor.
func (s *scheduleService) Update(ctx context.Context, id, viewerEmail string, role model.Role, req *dto.UpsertScheduleRequest) (*model.Schedule, error) {
	existing, ok := s.find(ctx, id)
	if !ok {
		return nil, ErrScheduleNotFound
	}
	if !calendar.CanModify(existing.AuthorEmail, viewerEmail, role) {
		return nil, ErrPermissionDenied
	}

	record, err := buildSchedule(id, existing.AuthorEmail, req)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.now()

	saved, err := s.stores.Schedules.Upsert(ctx, record)
	return &saved, err
}

func (s *scheduleService) Delete(ctx context.Context, id, viewerEmail string, role model.Role) error {
	existing, ok := s.find(ctx, id)
	if !ok {
		return ErrScheduleNotFound
	}
	if !calendar.CanModify(existing.AuthorEmail, viewerEmail, role) {
		return ErrPermissionDenied
	}
	return s.stores.Schedules.Delete(ctx, id)
}

func (s *scheduleService) find(ctx context.Context, id string) (model.Schedule, bool) {
	for _, it := range s.stores.Schedules.FetchAll(ctx) {
		if it.ScheduleID == id {
			return it, true
		}
	}
	return model.Schedule{}, false
}

func buildSchedule(id, authorEmail string, req *dto.UpsertScheduleRequest) (model.Schedule, error) {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return model.Schedule{}, ErrInvalidDate
	}
	category := model.Category(req.Category)
	if !category.Valid() {
		return model.Schedule{}, ErrInvalidCategory
	}

	return model.Schedule{
		ScheduleID:  id,
		Title:       req.Title,
		Date:        req.Date,
		TimeRange:   req.TimeRange,
		Location:    req.Location,
		Target:      req.Target,
		Category:    category,
		Description: req.Description,
		AuthorEmail: authorEmail,
		IsPrivate:   req.IsPrivate,
	}, nil
}
