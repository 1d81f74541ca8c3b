package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

const degradedWarning = "원격 저장소에 연결할 수 없어 변경 사항이 로컬에만 저장되었습니다"

// AuthHandler serves the login/session endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, resp)
}

// RefreshToken
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	resp, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, resp)
}

// Logout
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetCurrentUser
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	response.OK(c, dto.UserInfo{Email: email, Role: string(role)})
}

// ChangePassword
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), email, &req); err != nil {
		if errors.Is(err, errs.ErrRemoteDegraded) {
			response.OKDegraded(c, nil, degradedWarning)
			return
		}
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 10004, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, 10005, err.Error())
	case errors.Is(err, service.ErrBootstrapAccount):
		response.Forbidden(c, 10006, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 10007, err.Error())
	default:
		response.InternalError(c)
	}
}
