package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// --- Daily log DTOs ---

// SubmitLogRequest appends one piecework entry. Date defaults to today and
// AmountPKR is decimal text so no float rounding happens on the way in.
type SubmitLogRequest struct {
	WorkerID     string `json:"worker_id" binding:"required"`
	Date         string `json:"date"`
	NatureOfWork string `json:"nature_of_work" binding:"required"`
	AmountPKR    string `json:"amount_PKR" binding:"required"`
}

// LogWindowQuery selects the window and, for the owner, a factory.
type LogWindowQuery struct {
	Window    string `form:"window"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	FactoryID string `form:"factory_id"`
}

// DailyLogResponse is the daily_logs record in its normative field names.
type DailyLogResponse struct {
	ID           string          `json:"id"`
	WorkerID     string          `json:"worker_id"`
	WorkerName   string          `json:"worker_name"`
	Date         string          `json:"date"`
	NatureOfWork string          `json:"nature_of_work"`
	AmountPKR    decimal.Decimal `json:"amount_PKR"`
	Approved     bool            `json:"approved"`
	FactoryID    string          `json:"factory_id"`
	FactoryName  string          `json:"factory_name"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by"`
}

// ListDailyLogsResponse wraps a list of logs.
type ListDailyLogsResponse struct {
	Logs []DailyLogResponse `json:"logs"`
}

func ToDailyLogResponse(l *domain.DailyLog) DailyLogResponse {
	return DailyLogResponse{
		ID:           l.LogID,
		WorkerID:     l.WorkerID,
		WorkerName:   l.WorkerName,
		Date:         l.Date,
		NatureOfWork: l.NatureOfWork,
		AmountPKR:    l.AmountPKR,
		Approved:     l.Approved,
		FactoryID:    l.FactoryID,
		FactoryName:  l.FactoryName,
		CreatedAt:    l.CreatedAt,
		CreatedBy:    l.CreatedBy,
	}
}

func ToListDailyLogsResponse(ls []domain.DailyLog) ListDailyLogsResponse {
	list := make([]DailyLogResponse, len(ls))
	for i := range ls {
		list[i] = ToDailyLogResponse(&ls[i])
	}
	return ListDailyLogsResponse{Logs: list}
}
