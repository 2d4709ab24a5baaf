package domain

// Scope is the factory restriction applied to a session: every factory for the
// owner, one factory for an approved manager, nothing for anyone else.
type Scope struct {
	IdentityID  string
	Owner       bool
	FactoryID   string
	FactoryName string
}

// IsOwner reports whether the scope is unrestricted.
func (s Scope) IsOwner() bool { return s.Owner }

// IsManager reports whether the scope is bound to a factory.
func (s Scope) IsManager() bool { return !s.Owner && s.FactoryID != "" }

// Allows reports whether a record belonging to factoryID is visible and writable.
func (s Scope) Allows(factoryID string) bool {
	if s.Owner {
		return true
	}
	return s.FactoryID != "" && s.FactoryID == factoryID
}
