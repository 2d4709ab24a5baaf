package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) AuthenticateOwner(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) AuthenticateManager(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) RegisterManager(ctx context.Context, req dto.RegisterManagerRequest) (*domain.Identity, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}
func (m *MockIdentityService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockIdentityService) ListPendingManagers(ctx context.Context, scope domain.Scope) ([]domain.Identity, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Identity), args.Error(1)
}
func (m *MockIdentityService) ApproveManager(ctx context.Context, scope domain.Scope, identityID, factoryID string) (*domain.Identity, error) {
	args := m.Called(ctx, scope, identityID, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, session *domain.Session) (string, time.Time, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock FactoryService ---
type MockFactoryService struct {
	mock.Mock
}

func (m *MockFactoryService) CreateFactory(ctx context.Context, scope domain.Scope, req dto.CreateFactoryRequest) (*domain.Factory, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factory), args.Error(1)
}
func (m *MockFactoryService) ListFactories(ctx context.Context, scope domain.Scope) ([]domain.Factory, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factory), args.Error(1)
}

// --- Mock WorkerService ---
type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) CreateWorker(ctx context.Context, scope domain.Scope, req dto.CreateWorkerRequest, photo *domain.Photo) (*domain.Worker, error) {
	args := m.Called(ctx, scope, req, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) ListWorkers(ctx context.Context, scope domain.Scope) ([]domain.Worker, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

// --- Mock DailyLogService ---
type MockDailyLogService struct {
	mock.Mock
}

func (m *MockDailyLogService) SubmitLog(ctx context.Context, scope domain.Scope, req dto.SubmitLogRequest) (*domain.DailyLog, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLog), args.Error(1)
}
func (m *MockDailyLogService) ListLogs(ctx context.Context, scope domain.Scope, filter domain.LogFilter) ([]domain.DailyLog, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetReport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.Report, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockReportingService) GetExport(ctx context.Context, scope domain.Scope, filter domain.LogFilter) (*domain.ExportPayload, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportPayload), args.Error(1)
}

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardCounts, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardCounts), args.Error(1)
}
