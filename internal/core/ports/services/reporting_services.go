package services

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// ReportingSvcFacade derives reports and export payloads from the ledger.
type ReportingSvcFacade interface {
	GetReport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.Report, error)
	GetExport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.ExportPayload, error)
}

// DashboardSvc loads the owner's landing counts.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardCounts, error)
}
