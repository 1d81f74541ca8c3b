package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/kvcache"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// Context keys set by the auth middleware.
const (
	ContextEmail  = "user_email"
	ContextRole   = "role"
	ContextClaims = "claims"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// JWTAuth requires a valid, unrevoked access token and injects the session
// identity into the request context.
func JWTAuth(jwtMgr *jwt.Manager, cache *kvcache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, 10002, "인증 정보가 없습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 유형이 올바르지 않습니다")
			c.Abort()
			return
		}
		if revoked, _ := cache.IsBlacklisted(c.Request.Context(), claims.ID); revoked {
			response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
			c.Abort()
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// OptionalAuth injects the session identity when a valid access token is
// present and lets the request through anonymously otherwise. Used by the
// board and dashboard, which render for signed-out viewers too.
func OptionalAuth(jwtMgr *jwt.Manager, cache *kvcache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil || claims.TokenType != "access" {
			c.Next()
			return
		}
		if revoked, _ := cache.IsBlacklisted(c.Request.Context(), claims.ID); revoked {
			c.Next()
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RoleAuth allows only the listed roles past.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.Unauthorized(c, 10002, "인증이 필요합니다")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "접근 권한이 없습니다")
		c.Abort()
	}
}
