package services

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

// DailyLogWriterSvc appends piecework entries.
type DailyLogWriterSvc interface {
	SubmitLog(ctx context.Context, scope domain.Scope, req dto.SubmitLogRequest) (*domain.DailyLog, error)
}

// DailyLogReaderSvc lists logs visible to a scope inside a window.
type DailyLogReaderSvc interface {
	ListLogs(ctx context.Context, scope domain.Scope, filter domain.LogFilter) ([]domain.DailyLog, error)
}

// DailyLogSvcFacade combines all daily-log service interfaces
type DailyLogSvcFacade interface {
	DailyLogWriterSvc
	DailyLogReaderSvc
}
