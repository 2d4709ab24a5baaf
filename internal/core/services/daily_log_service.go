package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/utils/reporting"
)

type dailyLogService struct {
	BaseService
	logRepo    portsrepo.DailyLogRepositoryFacade
	workerRepo portsrepo.WorkerReader
}

// NewDailyLogService creates a new DailyLogService.
func NewDailyLogService(logRepo portsrepo.DailyLogRepositoryFacade, workerRepo portsrepo.WorkerReader, opts ...ServiceOption) portssvc.DailyLogSvcFacade {
	return &dailyLogService{
		BaseService: newBaseService(opts),
		logRepo:     logRepo,
		workerRepo:  workerRepo,
	}
}

var _ portssvc.DailyLogSvcFacade = (*dailyLogService)(nil)

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, apperrors.NewValidationFailedError("amount_PKR", "is required")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewValidationFailedError("amount_PKR", "must be a number")
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, apperrors.NewValidationFailedError("amount_PKR", "must not be negative")
	}
	return amount.Round(2), nil
}

func (s *dailyLogService) SubmitLog(ctx context.Context, scope domain.Scope, req dto.SubmitLogRequest) (*domain.DailyLog, error) {
	if err := s.RequireFactoryScope(ctx, scope, "submit logs"); err != nil {
		return nil, err
	}
	workerID := strings.TrimSpace(req.WorkerID)
	if workerID == "" {
		return nil, apperrors.NewValidationFailedError("worker_id", "is required")
	}
	nature := strings.TrimSpace(req.NatureOfWork)
	if nature == "" {
		return nil, apperrors.NewValidationFailedError("nature_of_work", "is required")
	}
	amount, err := parseAmount(req.AmountPKR)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = now.Format(domain.ISODateLayout)
	} else if _, err := reporting.ParseISODate(date); err != nil {
		return nil, apperrors.NewValidationFailedError("date", err.Error())
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker", workerID)
		}
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}
	if !scope.Allows(worker.FactoryID) {
		s.LogInfo(ctx, "Log submission refused for worker outside scope",
			slog.String("worker_id", workerID), slog.String("identity_id", scope.IdentityID))
		return nil, apperrors.NewForbiddenError("worker belongs to another factory")
	}

	factoryName := worker.FactoryName
	if scope.IsManager() {
		factoryName = scope.FactoryName
	}
	entry := domain.DailyLog{
		LogID:        uuid.NewString(),
		WorkerID:     worker.WorkerID,
		WorkerName:   worker.Name,
		Date:         date,
		NatureOfWork: nature,
		AmountPKR:    amount,
		Approved:     false,
		FactoryID:    worker.FactoryID,
		FactoryName:  factoryName,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: scope.IdentityID,
		},
	}
	if err := s.logRepo.SaveDailyLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save daily log", slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to submit log: %w", err)
	}

	s.LogInfo(ctx, "Daily log submitted", slog.String("log_id", entry.LogID), slog.String("factory_id", entry.FactoryID))
	s.PublishEvent(ctx, domain.Event{
		Name:      domain.EventDailyLogSubmitted,
		SubjectID: entry.LogID,
		FactoryID: entry.FactoryID,
		ActorID:   scope.IdentityID,
		Attributes: map[string]string{
			"worker_id":  entry.WorkerID,
			"date":       entry.Date,
			"amount_PKR": entry.AmountPKR.StringFixed(2),
		},
	})
	return &entry, nil
}

// ListLogs narrows the query at the store and then applies the same scope and
// window rules in memory so the result never depends on how well the store filters.
func (s *dailyLogService) ListLogs(ctx context.Context, scope domain.Scope, filter domain.LogFilter) ([]domain.DailyLog, error) {
	if err := s.RequireFactoryScope(ctx, scope, "view logs"); err != nil {
		return nil, err
	}
	if filter.Window.Kind == "" {
		filter.Window.Kind = reporting.DefaultWindow
	}
	now := filter.At
	if now.IsZero() {
		now = s.Now()
	}
	r, err := reporting.Resolve(filter.Window, now)
	if err != nil {
		return nil, err
	}

	query := domain.LogQuery{From: r.From, To: r.To, FactoryID: filter.FactoryID}
	if !scope.IsOwner() {
		query.FactoryID = scope.FactoryID
	}
	logs, err := s.logRepo.ListDailyLogs(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily logs")
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	visible, _, err := reporting.FilterLogs(logs, scope, filter, now)
	if err != nil {
		return nil, err
	}
	return visible, nil
}
