package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

// DashboardHandler serves the landing-page payload.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	resp, err := h.dashboardSvc.Get(c.Request.Context(), IsAuthenticated(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}
