// Package handler exposes the business services over HTTP.
package handler

import "github.com/minumaeng82-netizen/dasuDashboard/internal/service"

// Handler aggregates the per-module HTTP handlers.
type Handler struct {
	Auth      *AuthHandler
	Schedule  *ScheduleHandler
	Training  *TrainingHandler
	Shortcut  *ShortcutHandler
	User      *UserHandler
	Export    *ExportHandler
	Dashboard *DashboardHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Schedule:  NewScheduleHandler(svc.Schedule),
		Training:  NewTrainingHandler(svc.Training),
		Shortcut:  NewShortcutHandler(svc.Shortcut),
		User:      NewUserHandler(svc.User),
		Export:    NewExportHandler(svc.Export),
		Dashboard: NewDashboardHandler(svc.Dashboard),
	}
}
