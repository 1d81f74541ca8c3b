package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// ScheduleHandler serves the calendar endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// List returns the flat visible schedule set.
// GET /api/v1/schedules?mode=all|mine
func (h *ScheduleHandler) List(c *gin.Context) {
	mode := calendar.ViewMode(c.DefaultQuery("mode", "all"))

	resp, err := h.scheduleSvc.List(c.Request.Context(), mode, SessionEmail(c))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// Grid returns the month or week day-cell matrix.
// GET /api/v1/schedules/grid?anchor=2026-03-01&view=month&mode=all
func (h *ScheduleHandler) Grid(c *gin.Context) {
	var q dto.GridQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 11001, "요청 형식이 올바르지 않습니다")
		return
	}

	resp, err := h.scheduleSvc.Grid(c.Request.Context(), &q, SessionEmail(c))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// Day returns the full entry list for one date.
// GET /api/v1/schedules/day/:date?mode=all
func (h *ScheduleHandler) Day(c *gin.Context) {
	date := c.Param("date")
	mode := calendar.ViewMode(c.DefaultQuery("mode", "all"))

	resp, err := h.scheduleSvc.Day(c.Request.Context(), date, mode, SessionEmail(c))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// Create registers a new calendar entry authored by the session user.
// POST /api/v1/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.scheduleSvc.Create(c.Request.Context(), email, &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, rec)
}

// Update replaces a calendar entry.
// PUT /api/v1/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.scheduleSvc.Update(c.Request.Context(), c.Param("id"), email, role, &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, rec)
}

// Delete removes a calendar entry.
// DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id"), email, role); err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, nil, degradedWarning)
			return
		}
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 11002, err.Error())
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidViewMode):
		response.BadRequest(c, 11003, err.Error())
	case errors.Is(err, service.ErrMineNeedsLogin):
		response.Unauthorized(c, 11004, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, 11005, err.Error())
	default:
		response.InternalError(c)
	}
}
