package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/middleware"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// MustGetUserEmail extracts the session email set by the auth middleware.
// On failure a 401 is written; the caller should return when ok is false.
func MustGetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextEmail)
	if !exists {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the session role.
func MustGetRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get(middleware.ContextRole)
	if !exists {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return "", false
	}
	return model.Role(s), true
}

// MustGetClaims extracts the full token claims.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(middleware.ContextClaims)
	if !exists {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "인증이 필요합니다")
		return nil, false
	}
	return claims, true
}

// SessionEmail returns the email of an optionally-authenticated request,
// or the empty string for anonymous viewers.
func SessionEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextEmail)
}

// IsAuthenticated reports whether the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return SessionEmail(c) != ""
}
