package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// --- Mock IdentityRepository ---
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) FindIdentityByID(ctx context.Context, identityID string) (*domain.Identity, error) {
	args := m.Called(ctx, identityID)
	var identity *domain.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	var identity *domain.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) ListIdentitiesByStanding(ctx context.Context, role domain.Role, status domain.ApprovalStatus) ([]domain.Identity, error) {
	args := m.Called(ctx, role, status)
	var identities []domain.Identity
	if args.Get(0) != nil {
		identities = args.Get(0).([]domain.Identity)
	}
	return identities, args.Error(1)
}

func (m *MockIdentityRepository) RegisterIdentity(ctx context.Context, identity domain.Identity, credential domain.Credential) error {
	args := m.Called(ctx, identity, credential)
	return args.Error(0)
}

func (m *MockIdentityRepository) UpsertOwner(ctx context.Context, identity domain.Identity, credential domain.Credential) (*domain.Identity, error) {
	args := m.Called(ctx, identity, credential)
	var stored *domain.Identity
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.Identity)
	}
	return stored, args.Error(1)
}

func (m *MockIdentityRepository) ApproveManager(ctx context.Context, identityID string, standing domain.ApprovedManagerStanding) (*domain.Identity, error) {
	args := m.Called(ctx, identityID, standing)
	var identity *domain.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	args := m.Called(ctx, email)
	var credential *domain.Credential
	if args.Get(0) != nil {
		credential = args.Get(0).(*domain.Credential)
	}
	return credential, args.Error(1)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.SessionRecord) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	args := m.Called(ctx, sessionID)
	var session *domain.SessionRecord
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.SessionRecord)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) RevokeSession(ctx context.Context, sessionID string, revokedAt time.Time) error {
	args := m.Called(ctx, sessionID, revokedAt)
	return args.Error(0)
}

// --- Mock FactoryRepository ---
type MockFactoryRepository struct {
	mock.Mock
}

func (m *MockFactoryRepository) FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error) {
	args := m.Called(ctx, factoryID)
	var factory *domain.Factory
	if args.Get(0) != nil {
		factory = args.Get(0).(*domain.Factory)
	}
	return factory, args.Error(1)
}

func (m *MockFactoryRepository) ListFactories(ctx context.Context) ([]domain.Factory, error) {
	args := m.Called(ctx)
	var factories []domain.Factory
	if args.Get(0) != nil {
		factories = args.Get(0).([]domain.Factory)
	}
	return factories, args.Error(1)
}

func (m *MockFactoryRepository) CountFactories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFactoryRepository) SaveFactory(ctx context.Context, factory domain.Factory) error {
	args := m.Called(ctx, factory)
	return args.Error(0)
}

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	var worker *domain.Worker
	if args.Get(0) != nil {
		worker = args.Get(0).(*domain.Worker)
	}
	return worker, args.Error(1)
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context, factoryID string) ([]domain.Worker, error) {
	args := m.Called(ctx, factoryID)
	var workers []domain.Worker
	if args.Get(0) != nil {
		workers = args.Get(0).([]domain.Worker)
	}
	return workers, args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

// --- Mock DailyLogRepository ---
type MockDailyLogRepository struct {
	mock.Mock
}

func (m *MockDailyLogRepository) ListDailyLogs(ctx context.Context, query domain.LogQuery) ([]domain.DailyLog, error) {
	args := m.Called(ctx, query)
	var logs []domain.DailyLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.DailyLog)
	}
	return logs, args.Error(1)
}

func (m *MockDailyLogRepository) SaveDailyLog(ctx context.Context, log domain.DailyLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
