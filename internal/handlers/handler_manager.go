package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

// managerHandler serves the owner's approval queue.
type managerHandler struct {
	approvals portssvc.ManagerApprovalSvc
}

func registerManagerRoutes(rg *gin.RouterGroup, approvals portssvc.ManagerApprovalSvc) {
	h := &managerHandler{approvals: approvals}

	managers := rg.Group("/managers", middleware.RequireOwner())
	{
		managers.GET("/pending", h.listPending)
		managers.POST("/:identity_id/approve", h.approve)
	}
}

// listPending godoc
// @Summary List managers awaiting approval
// @Tags managers
// @Produce json
// @Success 200 {object} dto.ListIdentitiesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /managers/pending [get]
func (h *managerHandler) listPending(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	pending, err := h.approvals.ListPendingManagers(c.Request.Context(), session.Scope())
	if err != nil {
		respondError(c, err, "Failed to list pending managers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIdentitiesResponse(pending))
}

// approve godoc
// @Summary Approve a manager
// @Description Binds a manager to a factory. Approving again with the same factory changes nothing.
// @Tags managers
// @Accept json
// @Produce json
// @Param identity_id path string true "Manager identity ID"
// @Param approval body dto.ApproveManagerRequest true "Factory assignment"
// @Success 200 {object} dto.IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /managers/{identity_id}/approve [post]
func (h *managerHandler) approve(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.ApproveManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	identityID := c.Param("identity_id")
	approved, err := h.approvals.ApproveManager(c.Request.Context(), session.Scope(), identityID, req.FactoryID)
	if err != nil {
		respondError(c, err, "Failed to approve manager")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Manager approved",
		slog.String("manager_id", identityID), slog.String("factory_id", req.FactoryID))
	c.JSON(http.StatusOK, dto.ToIdentityResponse(approved))
}
