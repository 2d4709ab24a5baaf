package mapping

import (
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/models"
)

func ToModelFactory(d domain.Factory) models.Factory {
	return models.Factory{
		FactoryID:   d.FactoryID,
		Name:        d.Name,
		Location:    d.Location,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFactory(m models.Factory) domain.Factory {
	return domain.Factory{
		FactoryID:   m.FactoryID,
		Name:        m.Name,
		Location:    m.Location,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainFactorySlice(ms []models.Factory) []domain.Factory {
	ds := make([]domain.Factory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFactory(m)
	}
	return ds
}

func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:    d.WorkerID,
		Name:        d.Name,
		Designation: d.Designation,
		ImageURL:    d.ImageURL,
		FactoryID:   d.FactoryID,
		FactoryName: d.FactoryName,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:    m.WorkerID,
		Name:        m.Name,
		Designation: m.Designation,
		ImageURL:    m.ImageURL,
		FactoryID:   m.FactoryID,
		FactoryName: m.FactoryName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}
