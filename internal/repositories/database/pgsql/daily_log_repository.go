package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/factory_ops_app/internal/models"
	"github.com/SscSPs/factory_ops_app/internal/utils/mapping"
)

type PgxDailyLogRepository struct {
	BaseRepository
}

func newPgxDailyLogRepository(pool *pgxpool.Pool) *PgxDailyLogRepository {
	return &PgxDailyLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DailyLogRepositoryFacade = (*PgxDailyLogRepository)(nil)

var FULL_DAILY_LOG_SELECT_QUERY = `
SELECT
	l.id, l.worker_id, l.worker_name, to_char(l.log_date, 'YYYY-MM-DD') AS log_date, l.nature_of_work,
	l.amount_pkr, l.approved, l.factory_id, l.factory_name, l.created_at, l.created_by
FROM daily_logs l
`

func (r *PgxDailyLogRepository) SaveDailyLog(ctx context.Context, log domain.DailyLog) error {
	m := mapping.ToModelDailyLog(log)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO daily_logs (
			id, worker_id, worker_name, log_date, nature_of_work, amount_pkr,
			approved, factory_id, factory_name, created_at, created_by
		)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11);`,
		m.LogID, m.WorkerID, m.WorkerName, m.LogDate, m.NatureOfWork, m.AmountPKR,
		m.Approved, m.FactoryID, m.FactoryName, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("worker", log.WorkerID)
		}
		return apperrors.NewPersistenceError("failed to save daily log "+log.LogID, err)
	}
	return nil
}

// buildLogFilter renders query as a WHERE clause with positional arguments.
func buildLogFilter(query domain.LogQuery) (string, []any) {
	var clauses []string
	var args []any
	if query.From != "" {
		args = append(args, query.From)
		clauses = append(clauses, fmt.Sprintf("l.log_date >= $%d::date", len(args)))
	}
	if query.To != "" {
		args = append(args, query.To)
		clauses = append(clauses, fmt.Sprintf("l.log_date <= $%d::date", len(args)))
	}
	if query.FactoryID != "" {
		args = append(args, query.FactoryID)
		clauses = append(clauses, fmt.Sprintf("l.factory_id = $%d", len(args)))
	}
	filter := ""
	if len(clauses) > 0 {
		filter = "WHERE " + strings.Join(clauses, " AND ") + " "
	}
	return filter + "ORDER BY l.log_date ASC, l.created_at ASC, l.id ASC", args
}

func (r *PgxDailyLogRepository) ListDailyLogs(ctx context.Context, query domain.LogQuery) ([]domain.DailyLog, error) {
	filter, args := buildLogFilter(query)
	rows, err := r.Pool.Query(ctx, FULL_DAILY_LOG_SELECT_QUERY+filter, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query daily logs", err)
	}
	defer rows.Close()
	modelLogs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailyLog])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to collect daily log rows", err)
	}
	return mapping.ToDomainDailyLogSlice(modelLogs), nil
}
