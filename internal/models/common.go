package models

import "time"

// AuditFields is the creation stamp shared by the append-only tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
