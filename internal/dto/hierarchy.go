package dto

import (
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// --- Factory DTOs ---

// CreateFactoryRequest defines data for creating a new factory.
type CreateFactoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// FactoryResponse defines data returned for a factory.
type FactoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

// ListFactoriesResponse wraps a list of factories.
type ListFactoriesResponse struct {
	Factories []FactoryResponse `json:"factories"`
}

func ToFactoryResponse(f *domain.Factory) FactoryResponse {
	return FactoryResponse{
		ID:        f.FactoryID,
		Name:      f.Name,
		Location:  f.Location,
		CreatedAt: f.CreatedAt,
		CreatedBy: f.CreatedBy,
	}
}

func ToListFactoriesResponse(fs []domain.Factory) ListFactoriesResponse {
	list := make([]FactoryResponse, len(fs))
	for i := range fs {
		list[i] = ToFactoryResponse(&fs[i])
	}
	return ListFactoriesResponse{Factories: list}
}

// --- Worker DTOs ---

// CreateWorkerRequest is bound from a multipart form so a photo can travel with it.
// FactoryID is read only for the owner; a manager's scope supplies it.
type CreateWorkerRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Designation string `form:"designation" json:"designation" binding:"required"`
	FactoryID   string `form:"factory_id" json:"factory_id"`
}

// WorkerResponse defines data returned for a worker.
type WorkerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	ImageURL    *string   `json:"image_url,omitempty"`
	FactoryID   string    `json:"factory_id"`
	FactoryName string    `json:"factory_name"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

// ListWorkersResponse wraps a list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:          w.WorkerID,
		Name:        w.Name,
		Designation: w.Designation,
		ImageURL:    w.ImageURL,
		FactoryID:   w.FactoryID,
		FactoryName: w.FactoryName,
		CreatedAt:   w.CreatedAt,
		CreatedBy:   w.CreatedBy,
	}
}

func ToListWorkersResponse(ws []domain.Worker) ListWorkersResponse {
	list := make([]WorkerResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkerResponse(&ws[i])
	}
	return ListWorkersResponse{Workers: list}
}
