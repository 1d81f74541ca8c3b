// Package router wires middleware and handlers into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/handler"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/middleware"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/kvcache"
)

// Setup builds the gin engine with all routes registered.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, cache *kvcache.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (no session required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// public-facing reads: render for signed-out viewers as well,
		// with the identity injected when a session is present
		public := v1.Group("")
		public.Use(middleware.OptionalAuth(jwtMgr, cache))
		{
			public.GET("/dashboard", h.Dashboard.Get)
			public.GET("/training-posts", h.Training.List)
			public.GET("/shortcuts", h.Shortcut.List)
			public.GET("/schedules", h.Schedule.List)
			public.GET("/schedules/grid", h.Schedule.Grid)
			public.GET("/schedules/day/:date", h.Schedule.Day)
			public.GET("/export/calendar.ics", h.Export.ICSFeed)
		}

		// session required
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, cache))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// calendar entries (author/admin checks in the service)
			authorized.POST("/schedules", h.Schedule.Create)
			authorized.PUT("/schedules/:id", h.Schedule.Update)
			authorized.DELETE("/schedules/:id", h.Schedule.Delete)

			// training board
			authorized.GET("/training-posts/:id", h.Training.Get)
			authorized.POST("/training-posts", h.Training.Create)
			authorized.PUT("/training-posts/:id", h.Training.Update)
			authorized.DELETE("/training-posts/:id", h.Training.Delete)

			// downloads
			authorized.GET("/export/weekly", h.Export.Weekly)
			authorized.GET("/export/monthly", h.Export.Monthly)

			// shortcut bar (admin-managed)
			authorized.POST("/shortcuts", middleware.RoleAuth("admin"), h.Shortcut.Create)
			authorized.PUT("/shortcuts/:id", middleware.RoleAuth("admin"), h.Shortcut.Update)
			authorized.DELETE("/shortcuts/:id", middleware.RoleAuth("admin"), h.Shortcut.Delete)

			// user management (admin only)
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.DELETE("/:email", h.User.Delete)
				users.POST("/import", h.User.ImportCSV)
				users.GET("/import/template", h.User.CSVTemplate)
			}
		}
	}

	return r
}
