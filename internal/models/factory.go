package models

type Factory struct {
	FactoryID string `db:"id"`
	Name      string `db:"name"`
	Location  string `db:"location"`
	AuditFields
}

type Worker struct {
	WorkerID    string  `db:"id"`
	Name        string  `db:"name"`
	Designation string  `db:"designation"`
	ImageURL    *string `db:"image_url"`
	FactoryID   string  `db:"factory_id"`
	FactoryName string  `db:"factory_name"`
	AuditFields
}
