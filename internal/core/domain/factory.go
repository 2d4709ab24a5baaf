package domain

// Factory is a physical production site.
type Factory struct {
	FactoryID string `json:"factoryID"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	AuditFields
}
