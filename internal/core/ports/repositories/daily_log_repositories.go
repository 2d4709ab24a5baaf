package repositories

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// DailyLogReader defines read operations for daily logs
type DailyLogReader interface {
	// ListDailyLogs returns the logs matching query ordered by date then creation.
	ListDailyLogs(ctx context.Context, query domain.LogQuery) ([]domain.DailyLog, error)
}

// DailyLogWriter defines write operations for daily logs. Logs are append-only.
type DailyLogWriter interface {
	SaveDailyLog(ctx context.Context, log domain.DailyLog) error
}

// DailyLogRepositoryFacade combines all daily-log repository interfaces
type DailyLogRepositoryFacade interface {
	DailyLogReader
	DailyLogWriter
}
