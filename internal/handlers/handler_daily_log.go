package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/utils/reporting"
)

type dailyLogHandler struct {
	logService portssvc.DailyLogSvcFacade
}

func registerDailyLogRoutes(rg *gin.RouterGroup, ls portssvc.DailyLogSvcFacade) {
	h := &dailyLogHandler{logService: ls}

	logs := rg.Group("/logs")
	{
		logs.POST("", h.submitLog)
		logs.GET("", h.listLogs)
	}
}

// bindLogFilter reads the window query shared by the log and report routes.
func bindLogFilter(c *gin.Context) (domain.LogFilter, bool) {
	var q dto.LogWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return domain.LogFilter{}, false
	}
	kind, err := reporting.ParseWindowKind(q.Window)
	if err != nil {
		respondError(c, err, "Invalid window")
		return domain.LogFilter{}, false
	}
	return domain.LogFilter{
		Window:    domain.TimeWindow{Kind: kind, StartDate: q.StartDate, EndDate: q.EndDate},
		FactoryID: q.FactoryID,
	}, true
}

// submitLog godoc
// @Summary Submit a daily log
// @Description Appends a piecework entry for a worker in the caller's scope. date defaults to today.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body dto.SubmitLogRequest true "Log entry"
// @Success 201 {object} dto.DailyLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [post]
func (h *dailyLogHandler) submitLog(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry, err := h.logService.SubmitLog(c.Request.Context(), session.Scope(), req)
	if err != nil {
		respondError(c, err, "Failed to submit log")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDailyLogResponse(entry))
}

// listLogs godoc
// @Summary List daily logs
// @Description Lists the logs visible to the caller inside a window. factory_id only narrows the owner's view.
// @Tags logs
// @Produce json
// @Param window query string false "daily, weekly, monthly (default), yearly or custom"
// @Param start_date query string false "YYYY-MM-DD, custom window only"
// @Param end_date query string false "YYYY-MM-DD, custom window only"
// @Param factory_id query string false "Factory filter (owner only)"
// @Success 200 {object} dto.ListDailyLogsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [get]
func (h *dailyLogHandler) listLogs(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	filter, ok := bindLogFilter(c)
	if !ok {
		return
	}
	logs, err := h.logService.ListLogs(c.Request.Context(), session.Scope(), filter)
	if err != nil {
		respondError(c, err, "Failed to list logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDailyLogsResponse(logs))
}
