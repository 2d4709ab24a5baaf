package domain

// Worker is a person employed at one factory.
// FactoryName is a creation-time snapshot, not live-synced.
type Worker struct {
	WorkerID    string  `json:"workerID"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	ImageURL    *string `json:"imageURL,omitempty"`
	FactoryID   string  `json:"factoryID"`
	FactoryName string  `json:"factoryName"`
	AuditFields
}

// Photo is an image attached to a new worker.
type Photo struct {
	Data        []byte
	ContentType string
	Filename    string
}
