package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WindowKind selects the date predicate applied to logs.
type WindowKind string

const (
	WindowDaily   WindowKind = "daily"
	WindowWeekly  WindowKind = "weekly"
	WindowMonthly WindowKind = "monthly"
	WindowYearly  WindowKind = "yearly"
	WindowCustom  WindowKind = "custom"
)

// TimeWindow is a report window. StartDate and EndDate are only read for custom windows.
type TimeWindow struct {
	Kind      WindowKind `json:"kind"`
	StartDate string     `json:"startDate,omitempty"`
	EndDate   string     `json:"endDate,omitempty"`
}

// DateRange is an inclusive pair of ISO dates.
type DateRange struct {
	From string
	To   string
}

// LogFilter narrows a log listing or report. FactoryID is the owner's optional
// factory selection and is ignored for managers.
type LogFilter struct {
	Window    TimeWindow
	FactoryID string
	// At is the instant relative windows resolve against. Zero means now.
	At time.Time
}

// ReportSummary aggregates a set of logs.
type ReportSummary struct {
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
	PendingCount  int             `json:"pendingCount"`
}

// ChartPoint is one bar of a grouped amount chart.
type ChartPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ExportRow is one log flattened for export.
type ExportRow struct {
	Date         string          `json:"date"`
	WorkerName   string          `json:"workerName"`
	NatureOfWork string          `json:"natureOfWork"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

// Report is the derived view returned to report screens.
type Report struct {
	WindowLabel string        `json:"windowLabel"`
	Range       DateRange     `json:"-"`
	Summary     ReportSummary `json:"summary"`
	ByWorker    []ChartPoint  `json:"byWorker"`
	ByFactory   []ChartPoint  `json:"byFactory,omitempty"`
	Logs        []DailyLog    `json:"logs"`
}

// ExportPayload is everything an export adapter needs to render an artifact.
type ExportPayload struct {
	WindowLabel string        `json:"windowLabel"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Summary     ReportSummary `json:"summary"`
	Rows        []ExportRow   `json:"rows"`
}

// Artifact is a rendered export.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DashboardCounts backs the owner's landing screen.
type DashboardCounts struct {
	PendingManagers int `json:"pendingManagers"`
	Factories       int `json:"factories"`
}
