package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	exports          ExportLookup
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, exports ExportLookup) {
	h := &reportingHandler{reportingService: rs, exports: exports}

	reports := rg.Group("/reports")
	{
		reports.GET("", h.getReport)
		reports.GET("/export", h.exportReport)
	}
}

// getReport godoc
// @Summary Get a report
// @Description Summary totals plus per-worker and, for the owner, per-factory breakdowns over a window.
// @Tags reports
// @Produce json
// @Param window query string false "daily, weekly, monthly (default), yearly or custom"
// @Param start_date query string false "YYYY-MM-DD, custom window only"
// @Param end_date query string false "YYYY-MM-DD, custom window only"
// @Param factory_id query string false "Factory filter (owner only)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	filter, ok := bindLogFilter(c)
	if !ok {
		return
	}
	report, err := h.reportingService.GetReport(c.Request.Context(), session.Scope(), filter)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// exportReport godoc
// @Summary Export a report
// @Description Renders the window's logs as a downloadable artifact.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param format query string false "json (default) or csv"
// @Param window query string false "daily, weekly, monthly (default), yearly or custom"
// @Param start_date query string false "YYYY-MM-DD, custom window only"
// @Param end_date query string false "YYYY-MM-DD, custom window only"
// @Param factory_id query string false "Factory filter (owner only)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	adapter, err := h.exports.Lookup(c.Query("format"))
	if err != nil {
		respondError(c, err, "Unsupported export format")
		return
	}
	filter, ok := bindLogFilter(c)
	if !ok {
		return
	}
	payload, err := h.reportingService.GetExport(c.Request.Context(), session.Scope(), filter)
	if err != nil {
		respondError(c, err, "Failed to build export")
		return
	}
	artifact, err := adapter.Render(c.Request.Context(), *payload)
	if err != nil {
		respondError(c, err, "Failed to render export")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Report exported",
		slog.String("format", adapter.Format()), slog.Int("rows", len(payload.Rows)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
