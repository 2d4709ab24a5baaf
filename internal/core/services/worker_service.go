package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/utils/blobkey"
)

type workerService struct {
	BaseService
	workerRepo  portsrepo.WorkerRepositoryFacade
	factoryRepo portsrepo.FactoryReader
	blobs       ports.BlobStore
}

// NewWorkerService creates a new WorkerService. blobs may be nil, in which
// case creating a worker with a photo fails.
func NewWorkerService(
	workerRepo portsrepo.WorkerRepositoryFacade,
	factoryRepo portsrepo.FactoryReader,
	blobs ports.BlobStore,
	opts ...ServiceOption,
) portssvc.WorkerSvcFacade {
	return &workerService{
		BaseService: newBaseService(opts),
		workerRepo:  workerRepo,
		factoryRepo: factoryRepo,
		blobs:       blobs,
	}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

func (s *workerService) CreateWorker(ctx context.Context, scope domain.Scope, req dto.CreateWorkerRequest, photo *domain.Photo) (*domain.Worker, error) {
	if err := s.RequireFactoryScope(ctx, scope, "create workers"); err != nil {
		return nil, err
	}
	name, designation := strings.TrimSpace(req.Name), strings.TrimSpace(req.Designation)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name", "is required")
	}
	if designation == "" {
		return nil, apperrors.NewValidationFailedError("designation", "is required")
	}

	factory, err := s.targetFactory(ctx, scope, strings.TrimSpace(req.FactoryID))
	if err != nil {
		return nil, err
	}

	worker := domain.Worker{
		WorkerID:    uuid.NewString(),
		Name:        name,
		Designation: designation,
		FactoryID:   factory.FactoryID,
		FactoryName: factory.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: s.Now(),
			CreatedBy: scope.IdentityID,
		},
	}
	if scope.IsManager() {
		worker.FactoryName = scope.FactoryName
	}

	var imageKey string
	if photo != nil && len(photo.Data) > 0 {
		if s.blobs == nil {
			return nil, apperrors.NewPersistenceError("upload worker photo", errors.New("no blob store configured"))
		}
		imageKey = blobkey.NewWorkerImageKey(photo.ContentType, photo.Filename)
		url, err := s.blobs.Put(ctx, imageKey, photo.ContentType, photo.Data)
		if err != nil {
			s.LogError(ctx, err, "Failed to upload worker photo", slog.String("key", imageKey))
			return nil, fmt.Errorf("failed to upload worker photo: %w", err)
		}
		worker.ImageURL = &url
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		if imageKey != "" {
			s.LogError(ctx, err, "Worker not saved, uploaded photo is orphaned", slog.String("key", imageKey))
		} else {
			s.LogError(ctx, err, "Failed to save worker")
		}
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	s.LogInfo(ctx, "Worker created", slog.String("worker_id", worker.WorkerID), slog.String("factory_id", worker.FactoryID))
	s.PublishEvent(ctx, domain.Event{
		Name:       domain.EventWorkerCreated,
		SubjectID:  worker.WorkerID,
		FactoryID:  worker.FactoryID,
		ActorID:    scope.IdentityID,
		Attributes: map[string]string{"name": worker.Name, "designation": worker.Designation},
	})
	return &worker, nil
}

// targetFactory resolves where a new worker goes: the manager's own factory,
// or the factory the owner names.
func (s *workerService) targetFactory(ctx context.Context, scope domain.Scope, requested string) (*domain.Factory, error) {
	factoryID := requested
	if scope.IsManager() {
		factoryID = scope.FactoryID
	} else if factoryID == "" {
		return nil, apperrors.NewValidationFailedError("factory_id", "is required")
	}

	factory, err := s.factoryRepo.FindFactoryByID(ctx, factoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("factory", factoryID)
		}
		return nil, fmt.Errorf("failed to load factory: %w", err)
	}
	return factory, nil
}

func (s *workerService) ListWorkers(ctx context.Context, scope domain.Scope) ([]domain.Worker, error) {
	if err := s.RequireFactoryScope(ctx, scope, "list workers"); err != nil {
		return nil, err
	}
	factoryID := ""
	if !scope.IsOwner() {
		factoryID = scope.FactoryID
	}
	workers, err := s.workerRepo.ListWorkers(ctx, factoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers")
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}
