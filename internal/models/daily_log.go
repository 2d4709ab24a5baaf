package models

import "github.com/shopspring/decimal"

// DailyLog is a row of daily_logs. LogDate is selected as log_date::text so it
// arrives as an ISO calendar day with no timezone attached.
type DailyLog struct {
	LogID        string          `db:"id"`
	WorkerID     string          `db:"worker_id"`
	WorkerName   string          `db:"worker_name"`
	LogDate      string          `db:"log_date"`
	NatureOfWork string          `db:"nature_of_work"`
	AmountPKR    decimal.Decimal `db:"amount_pkr"`
	Approved     bool            `db:"approved"`
	FactoryID    string          `db:"factory_id"`
	FactoryName  string          `db:"factory_name"`
	AuditFields
}
