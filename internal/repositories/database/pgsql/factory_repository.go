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

type PgxFactoryRepository struct {
	BaseRepository
}

// newPgxFactoryRepository creates a new repository for factory data.
func newPgxFactoryRepository(pool *pgxpool.Pool) *PgxFactoryRepository {
	return &PgxFactoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FactoryRepositoryFacade = (*PgxFactoryRepository)(nil)

var FULL_FACTORY_SELECT_QUERY = `
SELECT f.id, f.name, f.location, f.created_at, f.created_by
FROM factories f
`

func (r *PgxFactoryRepository) getFactories(ctx context.Context, filterQuery string, args ...any) ([]domain.Factory, error) {
	rows, err := r.Pool.Query(ctx, FULL_FACTORY_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query factories", err)
	}
	defer rows.Close()
	modelFactories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Factory])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to collect factory rows", err)
	}
	return mapping.ToDomainFactorySlice(modelFactories), nil
}

func (r *PgxFactoryRepository) SaveFactory(ctx context.Context, factory domain.Factory) error {
	m := mapping.ToModelFactory(factory)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO factories (id, name, location, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5);`,
		m.FactoryID, m.Name, m.Location, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("factory ID " + factory.FactoryID + " already exists")
		}
		return apperrors.NewPersistenceError("failed to save factory "+factory.FactoryID, err)
	}
	return nil
}

func (r *PgxFactoryRepository) FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error) {
	factories, err := r.getFactories(ctx, `WHERE f.id = $1`, factoryID)
	if err != nil {
		return nil, err
	}
	if len(factories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &factories[0], nil
}

func (r *PgxFactoryRepository) ListFactories(ctx context.Context) ([]domain.Factory, error) {
	return r.getFactories(ctx, `ORDER BY f.created_at ASC, f.id ASC`)
}

func (r *PgxFactoryRepository) CountFactories(ctx context.Context) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM factories`).Scan(&n); err != nil {
		return 0, apperrors.NewPersistenceError("failed to count factories", err)
	}
	return n, nil
}
