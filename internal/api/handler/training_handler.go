package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// TrainingHandler serves the training/notice board endpoints.
type TrainingHandler struct {
	trainingSvc service.TrainingService
}

// NewTrainingHandler creates a TrainingHandler.
func NewTrainingHandler(trainingSvc service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingSvc: trainingSvc}
}

// List returns the board; anonymous viewers get it without material links.
// GET /api/v1/training-posts
func (h *TrainingHandler) List(c *gin.Context) {
	resp, err := h.trainingSvc.List(c.Request.Context(), IsAuthenticated(c))
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	response.OK(c, resp)
}

// Get returns a single board post with its material links.
// GET /api/v1/training-posts/:id
func (h *TrainingHandler) Get(c *gin.Context) {
	view, err := h.trainingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	response.OK(c, view)
}

// Create registers a new board post.
// POST /api/v1/training-posts
func (h *TrainingHandler) Create(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.UpsertTrainingPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.trainingSvc.Create(c.Request.Context(), email, &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleTrainingError(c, err)
		return
	}

	response.Created(c, rec)
}

// Update replaces a board post.
// PUT /api/v1/training-posts/:id
func (h *TrainingHandler) Update(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpsertTrainingPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.trainingSvc.Update(c.Request.Context(), c.Param("id"), email, role, &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, rec, degradedWarning)
			return
		}
		h.handleTrainingError(c, err)
		return
	}

	response.OK(c, rec)
}

// Delete removes a board post.
// DELETE /api/v1/training-posts/:id
func (h *TrainingHandler) Delete(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.trainingSvc.Delete(c.Request.Context(), c.Param("id"), email, role); err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, nil, degradedWarning)
			return
		}
		h.handleTrainingError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TrainingHandler) handleTrainingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, 12002, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12003, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, 12004, err.Error())
	default:
		response.InternalError(c)
	}
}
