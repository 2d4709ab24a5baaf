package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/factory_ops_app/internal/models"
	"github.com/SscSPs/factory_ops_app/internal/utils/mapping"
)

type PgxIdentityRepository struct {
	BaseRepository
}

func newPgxIdentityRepository(pool *pgxpool.Pool) *PgxIdentityRepository {
	return &PgxIdentityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.IdentityRepositoryFacade = (*PgxIdentityRepository)(nil)
	_ portsrepo.TransactionManager       = (*PgxIdentityRepository)(nil)
)

const identityColumns = `
	u.id, u.email, u.name, u.role, u.status, u.assigned_factory,
	u.assigned_factory_name, u.approved_at, u.created_at`

var FULL_IDENTITY_SELECT_QUERY = `SELECT` + identityColumns + `
FROM users u
`

func collectIdentities(rows pgx.Rows) ([]domain.Identity, error) {
	modelIdentities, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Identity])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to collect identity rows", err)
	}
	return mapping.ToDomainIdentitySlice(modelIdentities)
}

func (r *PgxIdentityRepository) getIdentities(ctx context.Context, filterQuery string, args ...any) ([]domain.Identity, error) {
	rows, err := r.Pool.Query(ctx, FULL_IDENTITY_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query identities", err)
	}
	defer rows.Close()
	return collectIdentities(rows)
}

func (r *PgxIdentityRepository) getIdentity(ctx context.Context, filterQuery string, args ...any) (*domain.Identity, error) {
	identities, err := r.getIdentities(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(identities) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &identities[0], nil
}

func (r *PgxIdentityRepository) FindIdentityByID(ctx context.Context, identityID string) (*domain.Identity, error) {
	return r.getIdentity(ctx, `WHERE u.id = $1`, identityID)
}

func (r *PgxIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.getIdentity(ctx, `WHERE lower(u.email) = lower($1)`, email)
}

func (r *PgxIdentityRepository) ListIdentitiesByStanding(ctx context.Context, role domain.Role, status domain.ApprovalStatus) ([]domain.Identity, error) {
	return r.getIdentities(ctx, `WHERE u.role = $1 AND u.status = $2 ORDER BY u.created_at ASC`, string(role), string(status))
}

func (r *PgxIdentityRepository) RegisterIdentity(ctx context.Context, identity domain.Identity, credential domain.Credential) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	m := mapping.ToModelIdentity(identity)
	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, email, name, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.IdentityID, m.Email, m.Name, m.Role, m.Status, m.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAuthError(apperrors.ErrEmailInUse, "email "+identity.Email+" is already registered")
		}
		return apperrors.NewPersistenceError("failed to insert identity", err)
	}

	c := mapping.ToModelCredential(credential)
	_, err = tx.Exec(ctx, `
		INSERT INTO credentials (identity_id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);`,
		c.IdentityID, c.Email, c.PasswordHash, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAuthError(apperrors.ErrEmailInUse, "email "+identity.Email+" is already registered")
		}
		return apperrors.NewPersistenceError("failed to insert credential", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxIdentityRepository) UpsertOwner(ctx context.Context, identity domain.Identity, credential domain.Credential) (_ *domain.Identity, err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	m := mapping.ToModelIdentity(identity)
	rows, err := tx.Query(ctx, `
		INSERT INTO users AS u (id, email, name, role, status, created_at)
		VALUES ($1, $2, $3, 'owner', 'approved', $4)
		ON CONFLICT (email) DO UPDATE SET
			role = 'owner',
			status = 'approved',
			assigned_factory = NULL,
			assigned_factory_name = NULL,
			approved_at = NULL
		RETURNING`+identityColumns+`;`,
		m.IdentityID, m.Email, m.Name, m.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to upsert owner", err)
	}
	owners, err := collectIdentities(rows)
	if err != nil {
		return nil, err
	}
	if len(owners) != 1 {
		err = apperrors.NewPersistenceError("owner upsert returned no row", nil)
		return nil, err
	}
	owner := owners[0]

	c := mapping.ToModelCredential(credential)
	_, err = tx.Exec(ctx, `
		INSERT INTO credentials (identity_id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			identity_id = EXCLUDED.identity_id,
			password_hash = EXCLUDED.password_hash,
			updated_at = EXCLUDED.updated_at;`,
		owner.IdentityID, c.Email, c.PasswordHash, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to upsert owner credential", err)
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PgxIdentityRepository) ApproveManager(ctx context.Context, identityID string, standing domain.ApprovedManagerStanding) (*domain.Identity, error) {
	rows, err := r.Pool.Query(ctx, `
		UPDATE users u SET
			role = 'manager',
			status = 'approved',
			assigned_factory = $2,
			assigned_factory_name = $3,
			approved_at = $4
		WHERE u.id = $1 AND u.role IN ('manager_pending', 'manager')
		RETURNING`+identityColumns+`;`,
		identityID, standing.FactoryID, standing.FactoryName, standing.ApprovedAt,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to approve manager", err)
	}
	identities, err := collectIdentities(rows)
	if err != nil {
		return nil, err
	}
	if len(identities) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &identities[0], nil
}

func (r *PgxIdentityRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT identity_id, email, password_hash, created_at, updated_at
		FROM credentials
		WHERE lower(email) = lower($1);`, email)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query credential", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Credential])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to collect credential", err)
	}
	c := mapping.ToDomainCredential(m)
	return &c, nil
}
