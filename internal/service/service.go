// Package service implements the business rules on top of the record
// store: authentication, calendar views, the training board, shortcuts,
// user administration, exports and the dashboard.
package service

import (
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/repository"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/seed"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/store"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/weather"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/kvcache"
)

// Stores bundles the per-kind record stores every service reads through.
type Stores struct {
	Schedules *store.Store[model.Schedule]
	Posts     *store.Store[model.TrainingPost]
	Shortcuts *store.Store[model.Shortcut]
	Users     *store.Store[model.User]
}

// NewStores wires each record kind to its repository, the shared cache and
// its seed data, with the kind's canonical sort order.
func NewStores(repo *repository.Repository, cache store.Cache, logger *zap.Logger) *Stores {
	return &Stores{
		Schedules: store.New(model.KindSchedule, repo.Schedule, cache, seed.Schedules,
			func(a, b model.Schedule) bool { return a.Date < b.Date }, logger),
		Posts: store.New(model.KindTrainingPost, repo.Training, cache, seed.TrainingPosts,
			func(a, b model.TrainingPost) bool { return a.Date > b.Date }, logger),
		Shortcuts: store.New(model.KindShortcut, repo.Shortcut, cache, seed.Shortcuts,
			func(a, b model.Shortcut) bool { return a.Label < b.Label }, logger),
		Users: store.New(model.KindUser, repo.User, cache, seed.Users,
			func(a, b model.User) bool { return a.Email < b.Email }, logger),
	}
}

// Service is the aggregate entry point for all business services.
type Service struct {
	Auth      AuthService
	Schedule  ScheduleService
	Training  TrainingService
	Shortcut  ShortcutService
	User      UserService
	Export    ExportService
	Dashboard DashboardService
}

// New creates the Service aggregate.
func New(
	cfg *config.Config,
	stores *Stores,
	jwtMgr *jwt.Manager,
	cache *kvcache.Client,
	weatherClient *weather.Client,
	logger *zap.Logger,
) *Service {
	scheduleSvc := NewScheduleService(stores, logger)
	trainingSvc := NewTrainingService(stores, logger)
	shortcutSvc := NewShortcutService(stores, logger)

	return &Service{
		Auth:      NewAuthService(cfg, stores, jwtMgr, cache, logger),
		Schedule:  scheduleSvc,
		Training:  trainingSvc,
		Shortcut:  shortcutSvc,
		User:      NewUserService(stores, logger),
		Export:    NewExportService(stores, logger),
		Dashboard: NewDashboardService(stores, weatherClient, logger),
	}
}
