package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: ds}
	rg.GET("/dashboard", middleware.RequireOwner(), h.getDashboard)
}

// getDashboard godoc
// @Summary Owner dashboard counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	counts, err := h.dashboardService.GetDashboard(c.Request.Context(), session.Scope())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(counts))
}
