package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// IdentityReader defines read operations for identity records
type IdentityReader interface {
	// FindIdentityByID returns apperrors.ErrNotFound when no row matches.
	FindIdentityByID(ctx context.Context, identityID string) (*domain.Identity, error)

	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)

	// ListIdentitiesByStanding lists rows with the given raw role and status, oldest first.
	ListIdentitiesByStanding(ctx context.Context, role domain.Role, status domain.ApprovalStatus) ([]domain.Identity, error)
}

// IdentityWriter defines write operations for identity records
type IdentityWriter interface {
	// RegisterIdentity stores the identity and its credential in one transaction.
	// A taken email yields apperrors.ErrEmailInUse.
	RegisterIdentity(ctx context.Context, identity domain.Identity, credential domain.Credential) error

	// UpsertOwner creates or refreshes the owner row keyed by email together
	// with its credential and returns the stored row.
	UpsertOwner(ctx context.Context, identity domain.Identity, credential domain.Credential) (*domain.Identity, error)

	// ApproveManager binds a manager row to a factory in a single update.
	ApproveManager(ctx context.Context, identityID string, standing domain.ApprovedManagerStanding) (*domain.Identity, error)
}

// CredentialReader resolves the stored secret for the shared login path.
type CredentialReader interface {
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// IdentityRepositoryFacade combines all identity-related repository interfaces
type IdentityRepositoryFacade interface {
	IdentityReader
	IdentityWriter
	CredentialReader
}

// SessionRepositoryFacade persists the sessions behind bearer tokens.
type SessionRepositoryFacade interface {
	SaveSession(ctx context.Context, session domain.SessionRecord) error
	FindSessionByID(ctx context.Context, sessionID string) (*domain.SessionRecord, error)
	// RevokeSession is a no-op for an already revoked or unknown session.
	RevokeSession(ctx context.Context, sessionID string, revokedAt time.Time) error
}
