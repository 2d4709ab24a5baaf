package domain

import "time"

// Event names published for external notification adapters.
const (
	EventManagerApproved   = "manager.approved"
	EventWorkerCreated     = "worker.created"
	EventDailyLogSubmitted = "daily_log.submitted"
)

// Event is a best-effort notification about a completed write.
type Event struct {
	Name       string            `json:"name"`
	SubjectID  string            `json:"subjectID"`
	FactoryID  string            `json:"factoryID,omitempty"`
	ActorID    string            `json:"actorID"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
