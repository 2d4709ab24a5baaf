package reporting

import (
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// FilterLogs applies the scope and the window of filter to logs.
func FilterLogs(logs []domain.DailyLog, scope domain.Scope, filter domain.LogFilter, now time.Time) ([]domain.DailyLog, domain.DateRange, error) {
	r, err := Resolve(filter.Window, now)
	if err != nil {
		return nil, domain.DateRange{}, err
	}
	return FilterByRange(ApplyScope(logs, scope, filter.FactoryID), r), r, nil
}

// BuildReport derives the report view. The per-factory breakdown is only
// computed for the owner.
func BuildReport(logs []domain.DailyLog, scope domain.Scope, filter domain.LogFilter, now time.Time) (domain.Report, error) {
	visible, r, err := FilterLogs(logs, scope, filter, now)
	if err != nil {
		return domain.Report{}, err
	}
	report := domain.Report{
		WindowLabel: WindowLabel(filter.Window),
		Range:       r,
		Summary:     Summarize(visible),
		ByWorker:    GroupByWorker(visible),
		Logs:        visible,
	}
	if scope.IsOwner() {
		report.ByFactory = GroupByFactory(visible)
	}
	return report, nil
}

// BuildExport assembles the payload handed to an export adapter.
func BuildExport(logs []domain.DailyLog, window domain.TimeWindow, generatedAt time.Time) domain.ExportPayload {
	return domain.ExportPayload{
		WindowLabel: WindowLabel(window),
		GeneratedAt: generatedAt,
		Summary:     Summarize(logs),
		Rows:        ToExportRows(logs),
	}
}
