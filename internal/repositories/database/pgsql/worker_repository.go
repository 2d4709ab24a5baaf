package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/factory_ops_app/internal/models"
	"github.com/SscSPs/factory_ops_app/internal/utils/mapping"
)

type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) *PgxWorkerRepository {
	return &PgxWorkerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

var FULL_WORKER_SELECT_QUERY = `
SELECT
	w.id, w.name, w.designation, w.image_url, w.factory_id, w.factory_name,
	w.created_at, w.created_by
FROM workers w
`

func (r *PgxWorkerRepository) getWorkers(ctx context.Context, filterQuery string, args ...any) ([]domain.Worker, error) {
	rows, err := r.Pool.Query(ctx, FULL_WORKER_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query workers", err)
	}
	defer rows.Close()
	modelWorkers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Worker])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to collect worker rows", err)
	}
	return mapping.ToDomainWorkerSlice(modelWorkers), nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO workers (id, name, designation, image_url, factory_id, factory_name, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.WorkerID, m.Name, m.Designation, m.ImageURL, m.FactoryID, m.FactoryName, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("worker ID " + worker.WorkerID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("factory", worker.FactoryID)
		}
		return apperrors.NewPersistenceError("failed to save worker "+worker.WorkerID, err)
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	workers, err := r.getWorkers(ctx, `WHERE w.id = $1`, workerID)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workers[0], nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, factoryID string) ([]domain.Worker, error) {
	if factoryID == "" {
		return r.getWorkers(ctx, `ORDER BY w.created_at ASC, w.id ASC`)
	}
	return r.getWorkers(ctx, `WHERE w.factory_id = $1 ORDER BY w.created_at ASC, w.id ASC`, factoryID)
}
