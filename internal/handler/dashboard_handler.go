package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData godoc
// GET /api/admin/dashboard
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": data})
}
