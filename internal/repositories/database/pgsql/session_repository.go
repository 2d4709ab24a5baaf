package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/factory_ops_app/internal/models"
	"github.com/SscSPs/factory_ops_app/internal/utils/mapping"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.SessionRecord) error {
	m := mapping.ToModelSession(session)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO sessions (session_id, identity_id, created_at, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5);`,
		m.SessionID, m.IdentityID, m.CreatedAt, m.ExpiresAt, m.RevokedAt,
	)
	if err != nil {
		return apperrors.NewPersistenceError("failed to save session", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT session_id, identity_id, created_at, expires_at, revoked_at
		FROM sessions
		WHERE session_id = $1;`, sessionID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query session", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Session])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to collect session", err)
	}
	s := mapping.ToDomainSessionRecord(m)
	return &s, nil
}

func (r *PgxSessionRepository) RevokeSession(ctx context.Context, sessionID string, revokedAt time.Time) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE sessions SET revoked_at = $2
		WHERE session_id = $1 AND revoked_at IS NULL;`,
		sessionID, revokedAt,
	)
	if err != nil {
		return apperrors.NewPersistenceError("failed to revoke session", err)
	}
	return nil
}
