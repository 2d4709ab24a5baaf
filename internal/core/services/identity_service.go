package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/utils"
)

// OwnerCredential is the provisioned owner login. PasswordHash is bcrypt.
type OwnerCredential struct {
	Email        string
	PasswordHash string
}

func (o OwnerCredential) configured() bool {
	return o.Email != "" && o.PasswordHash != ""
}

// identityService owns sign-in, registration, sessions and manager approval.
type identityService struct {
	BaseService
	identityRepo portsrepo.IdentityRepositoryFacade
	sessionRepo  portsrepo.SessionRepositoryFacade
	factoryRepo  portsrepo.FactoryReader
	owner        OwnerCredential
	sessionTTL   time.Duration
}

// NewIdentityService creates the identity service.
func NewIdentityService(
	identityRepo portsrepo.IdentityRepositoryFacade,
	sessionRepo portsrepo.SessionRepositoryFacade,
	factoryRepo portsrepo.FactoryReader,
	owner OwnerCredential,
	sessionTTL time.Duration,
	opts ...ServiceOption,
) portssvc.IdentitySvcFacade {
	return &identityService{
		BaseService:  newBaseService(opts),
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		factoryRepo:  factoryRepo,
		owner:        owner,
		sessionTTL:   sessionTTL,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func invalidCredentials() error {
	return apperrors.NewAuthError(apperrors.ErrInvalidCredentials, "email or password is incorrect")
}

func unauthorized(message string) error {
	return apperrors.NewAuthError(apperrors.ErrUnauthorized, message)
}

func (s *identityService) AuthenticateOwner(ctx context.Context, email, password string) (*domain.Session, error) {
	if !s.owner.configured() {
		s.LogInfo(ctx, "Owner login attempted but no owner credential is provisioned")
		return nil, invalidCredentials()
	}

	email = normalizeEmail(email)
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(normalizeEmail(s.owner.Email))) == 1
	// The hash is always checked so a wrong email costs the same as a wrong password.
	passwordOK := utils.CheckPasswordHash(password, s.owner.PasswordHash)
	if !emailOK || !passwordOK {
		s.LogInfo(ctx, "Owner login rejected")
		return nil, invalidCredentials()
	}

	now := s.Now()
	owner := domain.Identity{
		IdentityID: uuid.NewString(),
		Email:      email,
		Standing:   domain.OwnerStanding{},
		CreatedAt:  now,
	}
	credential := domain.Credential{
		IdentityID:   owner.IdentityID,
		Email:        email,
		PasswordHash: s.owner.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	stored, err := s.identityRepo.UpsertOwner(ctx, owner, credential)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert owner identity")
		return nil, fmt.Errorf("failed to record owner identity: %w", err)
	}

	session, err := s.openSession(ctx, *stored)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Owner signed in", slog.String("identity_id", stored.IdentityID))
	return session, nil
}

func (s *identityService) AuthenticateManager(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationFailedError("credentials", "email and password are required")
	}

	credential, err := s.identityRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalidCredentials()
		}
		s.LogError(ctx, err, "Failed to look up credential")
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	if !utils.CheckPasswordHash(password, credential.PasswordHash) {
		return nil, invalidCredentials()
	}

	record, err := s.saveSessionRecord(ctx, credential.IdentityID)
	if err != nil {
		return nil, err
	}

	identity, err := s.identityRepo.FindIdentityByID(ctx, credential.IdentityID)
	if err != nil {
		s.revoke(ctx, record.SessionID)
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrIllegalStanding) {
			s.LogError(ctx, err, "Credential resolved to an unusable identity", slog.String("identity_id", credential.IdentityID))
			return nil, unauthorized("account is not usable")
		}
		s.LogError(ctx, err, "Failed to load identity after sign-in", slog.String("identity_id", credential.IdentityID))
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}

	switch identity.Standing.(type) {
	case domain.OwnerStanding:
		// The stored owner hash may predate a rotation of the configured one.
		if credential.PasswordHash != s.owner.PasswordHash &&
			(!s.owner.configured() || !utils.CheckPasswordHash(password, s.owner.PasswordHash)) {
			s.revoke(ctx, record.SessionID)
			s.LogInfo(ctx, "Owner login rejected: stored credential is stale", slog.String("identity_id", identity.IdentityID))
			return nil, invalidCredentials()
		}
		s.LogInfo(ctx, "Signed in", slog.String("identity_id", identity.IdentityID), slog.String("role", string(identity.Standing.Role())))
		return toSession(record, *identity), nil
	case domain.ApprovedManagerStanding:
		s.LogInfo(ctx, "Signed in", slog.String("identity_id", identity.IdentityID), slog.String("role", string(identity.Standing.Role())))
		return toSession(record, *identity), nil
	case domain.PendingManagerStanding:
		s.revoke(ctx, record.SessionID)
		return nil, apperrors.NewAuthError(apperrors.ErrPendingApproval, "your account is awaiting approval")
	default:
		s.revoke(ctx, record.SessionID)
		return nil, unauthorized("account is not usable")
	}
}

func (s *identityService) RegisterManager(ctx context.Context, req dto.RegisterManagerRequest) (*domain.Identity, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return nil, apperrors.NewValidationFailedError("name", "is required")
	case email == "":
		return nil, apperrors.NewValidationFailedError("email", "is required")
	case req.Password == "":
		return nil, apperrors.NewValidationFailedError("password", "is required")
	case req.ConfirmPassword != "" && req.ConfirmPassword != req.Password:
		return nil, apperrors.NewValidationFailedError("confirm_password", "does not match password")
	}
	if len([]rune(req.Password)) < utils.MinPasswordLength {
		return nil, apperrors.NewAuthError(apperrors.ErrWeakCredential,
			fmt.Sprintf("password must be at least %d characters", utils.MinPasswordLength))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	identity := domain.Identity{
		IdentityID: uuid.NewString(),
		Email:      email,
		Name:       name,
		Standing:   domain.PendingManagerStanding{},
		CreatedAt:  now,
	}
	credential := domain.Credential{
		IdentityID:   identity.IdentityID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.identityRepo.RegisterIdentity(ctx, identity, credential); err != nil {
		if !errors.Is(err, apperrors.ErrEmailInUse) {
			s.LogError(ctx, err, "Failed to register manager")
		}
		return nil, fmt.Errorf("failed to register manager: %w", err)
	}

	s.LogInfo(ctx, "Manager registered", slog.String("identity_id", identity.IdentityID))
	return &identity, nil
}

func (s *identityService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, unauthorized("no session")
	}
	record, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, unauthorized("session not found")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !record.IsLive(s.Now()) {
		return nil, unauthorized("session has ended")
	}

	identity, err := s.identityRepo.FindIdentityByID(ctx, record.IdentityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrIllegalStanding) {
			return nil, unauthorized("account is not usable")
		}
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	if _, pending := identity.Standing.(domain.PendingManagerStanding); pending {
		return nil, unauthorized("account is awaiting approval")
	}
	return toSession(*record, *identity), nil
}

func (s *identityService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.RevokeSession(ctx, sessionID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke session", slog.String("session_id", sessionID))
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (s *identityService) ListPendingManagers(ctx context.Context, scope domain.Scope) ([]domain.Identity, error) {
	if err := s.RequireOwner(ctx, scope, "list pending managers"); err != nil {
		return nil, err
	}
	pending, err := s.identityRepo.ListIdentitiesByStanding(ctx, domain.RoleManagerPending, domain.StatusPending)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending managers")
		return nil, fmt.Errorf("failed to list pending managers: %w", err)
	}
	return pending, nil
}

// ApproveManager binds a pending manager to a factory. Re-approving with the
// same factory returns the manager unchanged; approving into another factory is
// a conflict. There is no concurrency token: two approvals racing for one
// pending manager end with the last write.
func (s *identityService) ApproveManager(ctx context.Context, scope domain.Scope, identityID, factoryID string) (*domain.Identity, error) {
	if err := s.RequireOwner(ctx, scope, "approve managers"); err != nil {
		return nil, err
	}
	identityID, factoryID = strings.TrimSpace(identityID), strings.TrimSpace(factoryID)
	if identityID == "" {
		return nil, apperrors.NewValidationFailedError("identity_id", "is required")
	}
	if factoryID == "" {
		return nil, apperrors.NewValidationFailedError("factory_id", "is required")
	}

	factory, err := s.factoryRepo.FindFactoryByID(ctx, factoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("factory", factoryID)
		}
		return nil, fmt.Errorf("failed to load factory: %w", err)
	}

	target, err := s.identityRepo.FindIdentityByID(ctx, identityID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil, apperrors.NewNotFoundError("identity", identityID)
	case errors.Is(err, apperrors.ErrIllegalStanding):
		// A malformed manager row is repaired by the approval itself.
		s.LogInfo(ctx, "Approving identity with an illegal stored standing", slog.String("identity_id", identityID))
	case err != nil:
		return nil, fmt.Errorf("failed to load identity: %w", err)
	case target.IsOwner():
		return nil, apperrors.NewValidationFailedError("identity_id", "the owner cannot be approved as a manager")
	}
	if target != nil {
		if current, ok := target.AssignedFactory(); ok {
			if current.FactoryID == factory.FactoryID {
				return target, nil
			}
			s.LogInfo(ctx, "Refused to move an approved manager",
				slog.String("identity_id", identityID), slog.String("factory_id", current.FactoryID))
			return nil, apperrors.NewConflictError("manager is already approved for another factory")
		}
	}

	standing := domain.ApprovedManagerStanding{
		FactoryID:   factory.FactoryID,
		FactoryName: factory.Name,
		ApprovedAt:  s.Now(),
	}
	approved, err := s.identityRepo.ApproveManager(ctx, identityID, standing)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("identity", identityID)
		}
		s.LogError(ctx, err, "Failed to approve manager", slog.String("identity_id", identityID))
		return nil, fmt.Errorf("failed to approve manager: %w", err)
	}

	s.LogInfo(ctx, "Manager approved", slog.String("identity_id", identityID), slog.String("factory_id", factory.FactoryID))
	s.PublishEvent(ctx, domain.Event{
		Name:       domain.EventManagerApproved,
		SubjectID:  identityID,
		FactoryID:  factory.FactoryID,
		ActorID:    scope.IdentityID,
		Attributes: map[string]string{"email": approved.Email, "factory_name": factory.Name},
	})
	return approved, nil
}

func (s *identityService) saveSessionRecord(ctx context.Context, identityID string) (domain.SessionRecord, error) {
	now := s.Now()
	record := domain.SessionRecord{
		SessionID:  uuid.NewString(),
		IdentityID: identityID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.SaveSession(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to open session", slog.String("identity_id", identityID))
		return domain.SessionRecord{}, fmt.Errorf("failed to open session: %w", err)
	}
	return record, nil
}

func (s *identityService) openSession(ctx context.Context, identity domain.Identity) (*domain.Session, error) {
	record, err := s.saveSessionRecord(ctx, identity.IdentityID)
	if err != nil {
		return nil, err
	}
	return toSession(record, identity), nil
}

// revoke invalidates a half-established session. The caller is already
// returning an auth error so a failure here is only logged.
func (s *identityService) revoke(ctx context.Context, sessionID string) {
	if err := s.sessionRepo.RevokeSession(ctx, sessionID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke session", slog.String("session_id", sessionID))
	}
}

func toSession(record domain.SessionRecord, identity domain.Identity) *domain.Session {
	return &domain.Session{
		SessionID: record.SessionID,
		Identity:  identity,
		IssuedAt:  record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}
}
