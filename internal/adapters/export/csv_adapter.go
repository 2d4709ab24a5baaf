package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// CSVAdapter renders one header, one row per log and a summary trailer.
type CSVAdapter struct{}

var _ ports.ExportAdapter = CSVAdapter{}

func (CSVAdapter) Format() string { return "csv" }

func (CSVAdapter) Render(_ context.Context, payload domain.ExportPayload) (domain.Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Period", safeCell(payload.WindowLabel)},
		{"Generated", payload.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
		{"Date", "Worker", "Nature of Work", "Amount (PKR)", "Status"},
	}
	for _, r := range payload.Rows {
		records = append(records, []string{r.Date, safeCell(r.WorkerName), safeCell(r.NatureOfWork), r.Amount.StringFixed(2), r.Status})
	}
	s := payload.Summary
	records = append(records,
		[]string{},
		[]string{"Total Logs", strconv.Itoa(s.Count)},
		[]string{"Total Amount (PKR)", s.TotalAmount.StringFixed(2)},
		[]string{"Average (PKR)", s.AverageAmount.StringFixed(2)},
		[]string{"Pending", strconv.Itoa(s.PendingCount)},
	)

	if err := w.WriteAll(records); err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{
		Filename:    artifactName(payload, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// safeCell quotes free text that a spreadsheet would otherwise run as a formula.
func safeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
