package domain

import "github.com/shopspring/decimal"

// DailyLog is one dated piecework entry. WorkerName and FactoryName are
// snapshots taken at submission and are never refreshed.
// Approved is stored but nothing in the system sets it to true.
type DailyLog struct {
	LogID        string          `json:"logID"`
	WorkerID     string          `json:"workerID"`
	WorkerName   string          `json:"workerName"`
	Date         string          `json:"date"` // YYYY-MM-DD
	NatureOfWork string          `json:"natureOfWork"`
	AmountPKR    decimal.Decimal `json:"amountPKR"`
	Approved     bool            `json:"approved"`
	FactoryID    string          `json:"factoryID"`
	FactoryName  string          `json:"factoryName"`
	AuditFields
}

// LogQuery is the storage-level filter for daily logs. Empty fields are unbounded.
type LogQuery struct {
	From      string
	To        string
	FactoryID string
}
