package mapping

import (
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/models"
)

// ToModelDailyLog converts a domain DailyLog to a model DailyLog
func ToModelDailyLog(d domain.DailyLog) models.DailyLog {
	return models.DailyLog{
		LogID:        d.LogID,
		WorkerID:     d.WorkerID,
		WorkerName:   d.WorkerName,
		LogDate:      d.Date,
		NatureOfWork: d.NatureOfWork,
		AmountPKR:    d.AmountPKR,
		Approved:     d.Approved,
		FactoryID:    d.FactoryID,
		FactoryName:  d.FactoryName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyLog converts a model DailyLog to a domain DailyLog
func ToDomainDailyLog(m models.DailyLog) domain.DailyLog {
	return domain.DailyLog{
		LogID:        m.LogID,
		WorkerID:     m.WorkerID,
		WorkerName:   m.WorkerName,
		Date:         m.LogDate,
		NatureOfWork: m.NatureOfWork,
		AmountPKR:    m.AmountPKR,
		Approved:     m.Approved,
		FactoryID:    m.FactoryID,
		FactoryName:  m.FactoryName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailyLogSlice converts a slice of model DailyLogs to domain DailyLogs
func ToDomainDailyLogSlice(ms []models.DailyLog) []domain.DailyLog {
	ds := make([]domain.DailyLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyLog(m)
	}
	return ds
}
