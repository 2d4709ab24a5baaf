package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// SummaryResponse represents the aggregate block of a report.
type SummaryResponse struct {
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	PendingCount  int             `json:"pending_count"`
}

// ChartPointResponse is one bar of a chart.
type ChartPointResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ReportResponse represents the report returned to report screens.
type ReportResponse struct {
	Window    string               `json:"window"`
	From      string               `json:"from,omitempty"`
	To        string               `json:"to,omitempty"`
	Summary   SummaryResponse      `json:"summary"`
	ByWorker  []ChartPointResponse `json:"by_worker"`
	ByFactory []ChartPointResponse `json:"by_factory,omitempty"`
	Logs      []DailyLogResponse   `json:"logs"`
}

// DashboardResponse carries the owner's landing counts.
type DashboardResponse struct {
	PendingManagers int `json:"pending_managers"`
	Factories       int `json:"factories"`
}

func ToSummaryResponse(s domain.ReportSummary) SummaryResponse {
	return SummaryResponse{
		Count:         s.Count,
		TotalAmount:   s.TotalAmount,
		AverageAmount: s.AverageAmount,
		PendingCount:  s.PendingCount,
	}
}

func toChartPoints(ps []domain.ChartPoint) []ChartPointResponse {
	if ps == nil {
		return nil
	}
	out := make([]ChartPointResponse, len(ps))
	for i, p := range ps {
		out[i] = ChartPointResponse{Label: p.Label, Amount: p.Amount}
	}
	return out
}

// ToReportResponse converts domain.Report to DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		Window:    r.WindowLabel,
		From:      r.Range.From,
		To:        r.Range.To,
		Summary:   ToSummaryResponse(r.Summary),
		ByWorker:  toChartPoints(r.ByWorker),
		ByFactory: toChartPoints(r.ByFactory),
		Logs:      ToListDailyLogsResponse(r.Logs).Logs,
	}
}

func ToDashboardResponse(d *domain.DashboardCounts) DashboardResponse {
	return DashboardResponse{PendingManagers: d.PendingManagers, Factories: d.Factories}
}
