package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// ShortcutHandler serves the global shortcut bar. Mutations are behind the
// admin role at the router.
type ShortcutHandler struct {
	shortcutSvc service.ShortcutService
}

// NewShortcutHandler creates a ShortcutHandler.
func NewShortcutHandler(shortcutSvc service.ShortcutService) *ShortcutHandler {
	return &ShortcutHandler{shortcutSvc: shortcutSvc}
}

// List
// GET /api/v1/shortcuts
func (h *ShortcutHandler) List(c *gin.Context) {
	resp, err := h.shortcutSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// Create
// POST /api/v1/shortcuts
func (h *ShortcutHandler) Create(c *gin.Context) {
	var req dto.UpsertShortcutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.shortcutSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleShortcutError(c, err)
		return
	}

	response.Created(c, rec)
}

// Update
// PUT /api/v1/shortcuts/:id
func (h *ShortcutHandler) Update(c *gin.Context) {
	var req dto.UpsertShortcutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.shortcutSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleShortcutError(c, err)
		return
	}

	response.OK(c, rec)
}

// Delete
// DELETE /api/v1/shortcuts/:id
func (h *ShortcutHandler) Delete(c *gin.Context) {
	if err := h.shortcutSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, nil, degradedWarning)
			return
		}
		h.handleShortcutError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ShortcutHandler) handleShortcutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShortcutNotFound):
		response.NotFound(c, 13002, err.Error())
	default:
		response.InternalError(c)
	}
}
