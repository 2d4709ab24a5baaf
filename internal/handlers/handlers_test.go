package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/factory_ops_app/internal/adapters/export"
	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/handlers"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
	"github.com/SscSPs/factory_ops_app/internal/platform/config"
	"github.com/SscSPs/factory_ops_app/internal/utils"
)

const testJWTSecret = "handler-test-secret"

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	identity  *MockIdentityService
	token     *MockTokenService
	factory   *MockFactoryService
	worker    *MockWorkerService
	dailyLog  *MockDailyLogService
	reporting *MockReportingService
	dashboard *MockDashboardService

	ownerSession   *domain.Session
	managerSession *domain.Session
	ownerToken     string
	managerToken   string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.identity = new(MockIdentityService)
	s.token = new(MockTokenService)
	s.factory = new(MockFactoryService)
	s.worker = new(MockWorkerService)
	s.dailyLog = new(MockDailyLogService)
	s.reporting = new(MockReportingService)
	s.dashboard = new(MockDashboardService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true, CORSAllowedOrigins: []string{"*"}}
	container := &portssvc.ServiceContainer{
		Identity:  s.identity,
		Token:     s.token,
		Factory:   s.factory,
		Worker:    s.worker,
		DailyLog:  s.dailyLog,
		Reporting: s.reporting,
		Dashboard: s.dashboard,
	}
	limiter, err := middleware.NewLimiter("2-M", nil)
	s.Require().NoError(err)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, container, handlers.RouteDeps{
		LoginLimiter: limiter,
		Exports:      export.DefaultRegistry(),
	})

	expires := time.Now().Add(time.Hour)
	s.ownerSession = &domain.Session{
		SessionID: "sess-owner",
		Identity:  domain.Identity{IdentityID: "owner-1", Email: "owner@x.com", Standing: domain.OwnerStanding{}},
		ExpiresAt: expires,
	}
	s.managerSession = &domain.Session{
		SessionID: "sess-mgr",
		Identity: domain.Identity{IdentityID: "mgr-1", Email: "ali@x.com", Standing: domain.ApprovedManagerStanding{
			FactoryID: "fac-1", FactoryName: "Factory A",
		}},
		ExpiresAt: expires,
	}
	s.ownerToken = s.issue(s.ownerSession)
	s.managerToken = s.issue(s.managerSession)
	s.identity.On("CurrentSession", mock.Anything, "sess-owner").Return(s.ownerSession, nil).Maybe()
	s.identity.On("CurrentSession", mock.Anything, "sess-mgr").Return(s.managerSession, nil).Maybe()
}

func (s *HandlerTestSuite) issue(session *domain.Session) string {
	token, err := utils.GenerateJWT(session.Identity.IdentityID, session.SessionID, testJWTSecret, session.ExpiresAt, "test")
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestProtectedRouteNeedsToken() {
	w := s.do(http.MethodGet, "/api/v1/workers", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.worker.AssertNotCalled(s.T(), "ListWorkers", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRevokedSessionIsRejected() {
	revoked := &domain.Session{SessionID: "sess-gone", Identity: s.ownerSession.Identity, ExpiresAt: s.ownerSession.ExpiresAt}
	s.identity.On("CurrentSession", mock.Anything, "sess-gone").
		Return(nil, apperrors.NewAuthError(apperrors.ErrUnauthorized, "session has ended")).Once()

	w := s.do(http.MethodGet, "/api/v1/factories", s.issue(revoked), nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.factory.AssertNotCalled(s.T(), "ListFactories", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestOwnerLoginReturnsToken() {
	s.identity.On("AuthenticateOwner", mock.Anything, "owner@x.com", "owner-secret").Return(s.ownerSession, nil).Once()
	s.token.On("GenerateAccessToken", mock.Anything, s.ownerSession).Return("signed", s.ownerSession.ExpiresAt, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/owner/login", "", dto.LoginRequest{Email: "owner@x.com", Password: "owner-secret"})
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("signed", resp.Token)
	s.Equal("owner", resp.Identity.Role)
	s.Nil(resp.Identity.AssignedFactory)
}

func (s *HandlerTestSuite) TestManagerLoginPending() {
	s.identity.On("AuthenticateManager", mock.Anything, "ali@x.com", "secret1").
		Return(nil, apperrors.NewAuthError(apperrors.ErrPendingApproval, "your account is awaiting approval")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "ali@x.com", Password: "secret1"})
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("PENDING_APPROVAL", s.errorCode(w))
	s.token.AssertNotCalled(s.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestManagerLoginWrongPassword() {
	s.identity.On("AuthenticateManager", mock.Anything, "ali@x.com", "nope12").
		Return(nil, apperrors.NewAuthError(apperrors.ErrInvalidCredentials, "email or password is incorrect")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "ali@x.com", Password: "nope12"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("INVALID_CREDENTIALS", s.errorCode(w))
}

func (s *HandlerTestSuite) TestLoginIsRateLimited() {
	s.identity.On("AuthenticateOwner", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAuthError(apperrors.ErrInvalidCredentials, "email or password is incorrect"))

	body := dto.LoginRequest{Email: "owner@x.com", Password: "guess"}
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/auth/owner/login", "", body).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/auth/owner/login", "", body).Code)
	s.Equal(http.StatusTooManyRequests, s.do(http.MethodPost, "/api/v1/auth/owner/login", "", body).Code)
}

func (s *HandlerTestSuite) TestRegisterRejectsShortPasswordBeforeService() {
	w := s.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterManagerRequest{
		Name: "Ali", Email: "ali@x.com", Password: "abc", ConfirmPassword: "abc",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_FAILED", s.errorCode(w))
	s.identity.AssertNotCalled(s.T(), "RegisterManager", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRegisterEmailInUse() {
	req := dto.RegisterManagerRequest{Name: "Ali", Email: "ali@x.com", Password: "secret1", ConfirmPassword: "secret1"}
	s.identity.On("RegisterManager", mock.Anything, req).
		Return(nil, apperrors.NewAuthError(apperrors.ErrEmailInUse, "email is already registered")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("EMAIL_IN_USE", s.errorCode(w))
}

func (s *HandlerTestSuite) TestRegisterCreatesPendingManager() {
	req := dto.RegisterManagerRequest{Name: "Ali", Email: "ali@x.com", Password: "secret1", ConfirmPassword: "secret1"}
	s.identity.On("RegisterManager", mock.Anything, req).
		Return(&domain.Identity{IdentityID: "mgr-2", Email: "ali@x.com", Name: "Ali", Standing: domain.PendingManagerStanding{}}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.IdentityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("manager_pending", resp.Role)
	s.Equal("pending", resp.Status)
}

func (s *HandlerTestSuite) TestCurrentSessionAndLogout() {
	w := s.do(http.MethodGet, "/api/v1/auth/session", s.managerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.IdentityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotNil(resp.AssignedFactory)
	s.Equal("fac-1", *resp.AssignedFactory)

	s.identity.On("Logout", mock.Anything, "sess-mgr").Return(nil).Once()
	w = s.do(http.MethodPost, "/api/v1/auth/logout", s.managerToken, nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.identity.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestOwnerRoutesRefuseManager() {
	for _, path := range []string{"/api/v1/factories", "/api/v1/managers/pending", "/api/v1/dashboard"} {
		w := s.do(http.MethodGet, path, s.managerToken, nil)
		s.Equal(http.StatusForbidden, w.Code, path)
	}
	s.factory.AssertNotCalled(s.T(), "ListFactories", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestApproveManager() {
	ownerScope := s.ownerSession.Scope()
	s.identity.On("ApproveManager", mock.Anything, ownerScope, "mgr-2", "fac-1").
		Return(&domain.Identity{IdentityID: "mgr-2", Standing: domain.ApprovedManagerStanding{FactoryID: "fac-1", FactoryName: "Factory A"}}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/managers/mgr-2/approve", s.ownerToken, dto.ApproveManagerRequest{FactoryID: "fac-1"})
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.IdentityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("manager", resp.Role)
	s.Equal("Factory A", *resp.AssignedFactoryName)
}

func (s *HandlerTestSuite) TestApproveManagerUnknownFactory() {
	s.identity.On("ApproveManager", mock.Anything, s.ownerSession.Scope(), "mgr-2", "fac-404").
		Return(nil, apperrors.NewNotFoundError("factory", "fac-404")).Once()

	w := s.do(http.MethodPost, "/api/v1/managers/mgr-2/approve", s.ownerToken, dto.ApproveManagerRequest{FactoryID: "fac-404"})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("NOT_FOUND", s.errorCode(w))
}

func (s *HandlerTestSuite) TestCreateFactoryPersistenceFailureIsOpaque() {
	req := dto.CreateFactoryRequest{Name: "Factory B", Location: "Lahore"}
	s.factory.On("CreateFactory", mock.Anything, s.ownerSession.Scope(), req).
		Return(nil, apperrors.NewPersistenceError("save factory", errors.New("pq: connection refused on 10.0.0.5"))).Once()

	w := s.do(http.MethodPost, "/api/v1/factories", s.ownerToken, req)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "10.0.0.5")
}

func (s *HandlerTestSuite) TestCreateWorkerWithPhoto() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("name", "Bilal"))
	s.Require().NoError(mw.WriteField("designation", "Fitter"))
	part, err := mw.CreateFormFile("photo", "bilal.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n0000000000000000"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	image := "https://blobs.test/worker_images/x.png"
	s.worker.On("CreateWorker", mock.Anything, s.managerSession.Scope(),
		dto.CreateWorkerRequest{Name: "Bilal", Designation: "Fitter"},
		mock.MatchedBy(func(p *domain.Photo) bool {
			return p != nil && p.ContentType == "image/png" && p.Filename == "bilal.png"
		}),
	).Return(&domain.Worker{WorkerID: "w-1", Name: "Bilal", Designation: "Fitter", ImageURL: &image, FactoryID: "fac-1", FactoryName: "Factory A"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.managerToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.WorkerResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(image, *resp.ImageURL)
	s.worker.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateWorkerRejectsNonImage() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("name", "Bilal"))
	s.Require().NoError(mw.WriteField("designation", "Fitter"))
	part, err := mw.CreateFormFile("photo", "notes.txt")
	s.Require().NoError(err)
	_, err = part.Write([]byte("just some text"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.managerToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.worker.AssertNotCalled(s.T(), "CreateWorker", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateWorkerRejectsDeclaredSVG() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("name", "Bilal"))
	s.Require().NoError(mw.WriteField("designation", "Fitter"))
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="photo"; filename="bilal.svg"`)
	h.Set("Content-Type", "image/svg+xml")
	part, err := mw.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.managerToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_FAILED", s.errorCode(w))
	s.worker.AssertNotCalled(s.T(), "CreateWorker", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestSubmitLog() {
	req := dto.SubmitLogRequest{WorkerID: "w-1", Date: "2024-03-05", NatureOfWork: "Handle fitting", AmountPKR: "1500"}
	s.dailyLog.On("SubmitLog", mock.Anything, s.managerSession.Scope(), req).Return(&domain.DailyLog{
		LogID: "l-1", WorkerID: "w-1", WorkerName: "Bilal", Date: "2024-03-05", NatureOfWork: "Handle fitting",
		AmountPKR: decimal.NewFromInt(1500), FactoryID: "fac-1", FactoryName: "Factory A",
	}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/logs", s.managerToken, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	s.Equal("1500", raw["amount_PKR"])
	s.Equal(false, raw["approved"])
	s.Equal("Factory A", raw["factory_name"])
}

func (s *HandlerTestSuite) TestListLogsCustomWindow() {
	filter := domain.LogFilter{Window: domain.TimeWindow{Kind: domain.WindowCustom, StartDate: "2024-03-01", EndDate: "2024-03-31"}}
	s.dailyLog.On("ListLogs", mock.Anything, s.managerSession.Scope(), filter).
		Return([]domain.DailyLog{{LogID: "l-1", Date: "2024-03-05", AmountPKR: decimal.NewFromInt(1500)}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/logs?window=custom&start_date=2024-03-01&end_date=2024-03-31", s.managerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListDailyLogsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Logs, 1)
}

func (s *HandlerTestSuite) TestListLogsUnknownWindow() {
	w := s.do(http.MethodGet, "/api/v1/logs?window=fortnightly", s.managerToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.dailyLog.AssertNotCalled(s.T(), "ListLogs", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestReportDefaultsToMonthly() {
	filter := domain.LogFilter{Window: domain.TimeWindow{Kind: domain.WindowMonthly}}
	s.reporting.On("GetReport", mock.Anything, s.ownerSession.Scope(), filter).Return(&domain.Report{
		WindowLabel: "Monthly",
		Range:       domain.DateRange{From: "2024-03-01"},
		Summary:     domain.ReportSummary{TotalAmount: decimal.Zero, AverageAmount: decimal.Zero},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports", s.ownerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Monthly", resp.Window)
	s.Equal(0, resp.Summary.Count)
}

func (s *HandlerTestSuite) TestExportCSV() {
	filter := domain.LogFilter{Window: domain.TimeWindow{Kind: domain.WindowCustom, StartDate: "2024-03-01", EndDate: "2024-03-31"}}
	s.reporting.On("GetExport", mock.Anything, s.managerSession.Scope(), filter).Return(&domain.ExportPayload{
		WindowLabel: "2024-03-01 to 2024-03-31",
		GeneratedAt: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC),
		Summary:     domain.ReportSummary{Count: 1, TotalAmount: decimal.NewFromInt(1500), AverageAmount: decimal.NewFromInt(1500), PendingCount: 1},
		Rows: []domain.ExportRow{{
			Date: "2024-03-05", WorkerName: "Bilal", NatureOfWork: "Handle fitting", Amount: decimal.NewFromInt(1500), Status: "Pending",
		}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/export?format=csv&window=custom&start_date=2024-03-01&end_date=2024-03-31", s.managerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	s.Contains(w.Header().Get("Content-Disposition"), `filename="daily-logs-20240401-080000.csv"`)
	s.Contains(w.Body.String(), "2024-03-05,Bilal,Handle fitting,1500.00,Pending")
}

func (s *HandlerTestSuite) TestExportUnknownFormat() {
	w := s.do(http.MethodGet, "/api/v1/reports/export?format=pdf", s.managerToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.reporting.AssertNotCalled(s.T(), "GetExport", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestDashboard() {
	s.dashboard.On("GetDashboard", mock.Anything, s.ownerSession.Scope()).
		Return(&domain.DashboardCounts{PendingManagers: 2, Factories: 3}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard", s.ownerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(2, resp.PendingManagers)
	s.Equal(3, resp.Factories)
}
