package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/holiday"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/weather"
)

// Must-read block shows this many of the latest posts.
const mustReadCount = 3

// DashboardService assembles the landing page: today's shared schedule,
// the newest board posts, the shortcut bar and the weather.
type DashboardService interface {
	Get(ctx context.Context, authenticated bool) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	stores  *Stores
	weather *weather.Client
	logger  *zap.Logger
	now     func() time.Time
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(stores *Stores, weatherClient *weather.Client, logger *zap.Logger) DashboardService {
	return &dashboardService{stores: stores, weather: weatherClient, logger: logger, now: time.Now}
}

func (s *dashboardService) Get(ctx context.Context, authenticated bool) (*dto.DashboardResponse, error) {
	today := s.now().Format(model.DateLayout)

	// today's schedule is always the shared feed, never mine mode
	schedules := calendar.VisibleSchedules(s.stores.Schedules.FetchAll(ctx), calendar.ViewAll, "")

	posts := s.stores.Posts.FetchAll(ctx)
	if len(posts) > mustReadCount {
		posts = posts[:mustReadCount]
	}
	mustRead := make([]dto.TrainingPostView, 0, len(posts))
	for _, p := range posts {
		mustRead = append(mustRead, dto.NewTrainingPostView(p, authenticated))
	}

	resp := &dto.DashboardResponse{
		Date:      today,
		Today:     calendar.DayEntries(today, schedules),
		MustRead:  mustRead,
		Shortcuts: s.stores.Shortcuts.FetchAll(ctx),
	}
	if h, ok := holiday.Lookup(today); ok {
		resp.Holiday = h.Name
	}

	// weather is decoration; a dead provider never fails the dashboard
	if report, err := s.weather.Current(ctx); err == nil {
		resp.Weather = report
	}

	return resp, nil
}
