package services

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/utils/reporting"
)

// reportingService derives views from the logs a scope can see. It holds no
// state of its own.
type reportingService struct {
	BaseService
	logs portssvc.DailyLogReaderSvc
}

// NewReportingService creates a new ReportingService.
func NewReportingService(logs portssvc.DailyLogReaderSvc, opts ...ServiceOption) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(opts),
		logs:        logs,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// pinFilter defaults the window and fixes the instant it resolves against, so
// the fetch and the aggregation agree on what "today" is.
func (s *reportingService) pinFilter(filter domain.LogFilter) domain.LogFilter {
	if filter.Window.Kind == "" {
		filter.Window.Kind = reporting.DefaultWindow
	}
	if filter.At.IsZero() {
		filter.At = s.Now()
	}
	return filter
}

func (s *reportingService) GetReport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.Report, error) {
	filter = s.pinFilter(filter)
	logs, err := s.logs.ListLogs(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	report, err := reporting.BuildReport(logs, scope, filter, filter.At)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *reportingService) GetExport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.ExportPayload, error) {
	filter = s.pinFilter(filter)
	logs, err := s.logs.ListLogs(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	payload := reporting.BuildExport(logs, filter.Window, filter.At)
	return &payload, nil
}
