package domain

import "time"

// AuditFields holds the creation stamp carried by factories, workers and logs.
// Records are append-only so there is no last-updated pair.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Identity ID
}

// ISODateLayout is the calendar-day format used for log dates and report windows.
const ISODateLayout = "2006-01-02"
