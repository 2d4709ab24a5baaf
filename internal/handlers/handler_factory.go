package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

type factoryHandler struct {
	factoryService portssvc.FactorySvcFacade
}

func registerFactoryRoutes(rg *gin.RouterGroup, fs portssvc.FactorySvcFacade) {
	h := &factoryHandler{factoryService: fs}

	factories := rg.Group("/factories", middleware.RequireOwner())
	{
		factories.POST("", h.createFactory)
		factories.GET("", h.listFactories)
	}
}

// createFactory godoc
// @Summary Create a factory
// @Tags factories
// @Accept json
// @Produce json
// @Param factory body dto.CreateFactoryRequest true "Factory details"
// @Success 201 {object} dto.FactoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /factories [post]
func (h *factoryHandler) createFactory(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreateFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	factory, err := h.factoryService.CreateFactory(c.Request.Context(), session.Scope(), req)
	if err != nil {
		respondError(c, err, "Failed to create factory")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFactoryResponse(factory))
}

// listFactories godoc
// @Summary List factories
// @Tags factories
// @Produce json
// @Success 200 {object} dto.ListFactoriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /factories [get]
func (h *factoryHandler) listFactories(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	factories, err := h.factoryService.ListFactories(c.Request.Context(), session.Scope())
	if err != nil {
		respondError(c, err, "Failed to list factories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFactoriesResponse(factories))
}
