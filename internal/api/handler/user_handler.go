package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// Upload limit for the CSV import.
const csvMaxSize = 1 << 20 // 1MB

// UserHandler serves the admin user-management endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	resp, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, resp)
}

// Create registers a single account.
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "필수 항목이 누락되었습니다")
		return
	}

	rec, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, dto.UserInfo{Email: rec.Email, Name: rec.Name, Role: string(rec.Role)}, degradedWarning)
			return
		}
		h.handleUserError(c, err)
		return
	}

	response.Created(c, dto.UserInfo{Email: rec.Email, Name: rec.Name, Role: string(rec.Role)})
}

// Delete removes an account.
// DELETE /api/v1/users/:email
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("email")); err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, nil, degradedWarning)
			return
		}
		h.handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportCSV bulk-registers accounts from an uploaded CSV file.
// POST /api/v1/users/import
func (h *UserHandler) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14001, "CSV 파일이 필요합니다")
		return
	}
	defer file.Close()

	result, err := h.userSvc.ImportCSV(c.Request.Context(), http.MaxBytesReader(c.Writer, file, csvMaxSize))
	if err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, result, degradedWarning)
			return
		}
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// CSVTemplate serves the downloadable bulk-registration skeleton.
// GET /api/v1/users/import/template
func (h *UserHandler) CSVTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="user-import-template.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(service.CSVTemplate))
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 14002, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, 14003, err.Error())
	default:
		response.InternalError(c)
	}
}
