package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// MaxLabelLength is the longest worker label shown on a chart before truncation.
const MaxLabelLength = 10

// Status labels used on exported rows.
const (
	StatusApproved = "Approved"
	StatusPending  = "Pending"
)

// ApplyScope keeps the logs visible to scope. A manager sees only their
// factory whatever selection is passed; the owner sees everything unless
// selectedFactoryID narrows it.
func ApplyScope(logs []domain.DailyLog, scope domain.Scope, selectedFactoryID string) []domain.DailyLog {
	factoryID := selectedFactoryID
	if !scope.IsOwner() {
		factoryID = scope.FactoryID
		if factoryID == "" {
			return []domain.DailyLog{}
		}
	}
	if factoryID == "" {
		return logs
	}
	out := make([]domain.DailyLog, 0, len(logs))
	for _, l := range logs {
		if l.FactoryID == factoryID {
			out = append(out, l)
		}
	}
	return out
}

// FilterByRange keeps the logs dated inside r.
func FilterByRange(logs []domain.DailyLog, r domain.DateRange) []domain.DailyLog {
	out := make([]domain.DailyLog, 0, len(logs))
	for _, l := range logs {
		if Contains(r, l.Date) {
			out = append(out, l)
		}
	}
	return out
}

// Summarize totals a log set. An empty set reports zero for every field.
func Summarize(logs []domain.DailyLog) domain.ReportSummary {
	s := domain.ReportSummary{
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
	}
	for _, l := range logs {
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(l.AmountPKR)
		if !l.Approved {
			s.PendingCount++
		}
	}
	if s.Count > 0 {
		s.AverageAmount = s.TotalAmount.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// GroupByWorker sums amounts per distinct worker name in first-occurrence
// order. Labels are truncated after grouping.
func GroupByWorker(logs []domain.DailyLog) []domain.ChartPoint {
	points := groupBy(logs, func(l domain.DailyLog) string { return l.WorkerName })
	for i := range points {
		points[i].Label = TruncateLabel(points[i].Label)
	}
	return points
}

// GroupByFactory sums amounts per distinct factory name in first-occurrence order.
func GroupByFactory(logs []domain.DailyLog) []domain.ChartPoint {
	return groupBy(logs, func(l domain.DailyLog) string { return l.FactoryName })
}

func groupBy(logs []domain.DailyLog, key func(domain.DailyLog) string) []domain.ChartPoint {
	points := []domain.ChartPoint{}
	index := make(map[string]int)
	for _, l := range logs {
		k := key(l)
		if i, ok := index[k]; ok {
			points[i].Amount = points[i].Amount.Add(l.AmountPKR)
			continue
		}
		index[k] = len(points)
		points = append(points, domain.ChartPoint{Label: k, Amount: l.AmountPKR})
	}
	return points
}

// TruncateLabel shortens s to MaxLabelLength characters followed by "...".
func TruncateLabel(s string) string {
	r := []rune(s)
	if len(r) <= MaxLabelLength {
		return s
	}
	return string(r[:MaxLabelLength]) + "..."
}

// ToExportRows flattens logs for export, keeping their order.
func ToExportRows(logs []domain.DailyLog) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(logs))
	for _, l := range logs {
		status := StatusPending
		if l.Approved {
			status = StatusApproved
		}
		rows = append(rows, domain.ExportRow{
			Date:         l.Date,
			WorkerName:   l.WorkerName,
			NatureOfWork: l.NatureOfWork,
			Amount:       l.AmountPKR,
			Status:       status,
		})
	}
	return rows
}
