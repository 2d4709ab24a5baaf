package domain

import "time"

// Role is the persisted role discriminator of an identity record.
type Role string

const (
	RoleOwner          Role = "owner"
	RoleManagerPending Role = "manager_pending"
	RoleManager        Role = "manager"
)

// ApprovalStatus is the persisted status of an identity record.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
)

// Standing is where an identity sits in the approval lifecycle. It is exactly
// one of OwnerStanding, PendingManagerStanding or ApprovedManagerStanding, so a
// manager without a factory or an owner bound to one cannot be expressed.
type Standing interface {
	Role() Role
	Status() ApprovalStatus
	isStanding()
}

// OwnerStanding is the single global-scope identity.
type OwnerStanding struct{}

func (OwnerStanding) Role() Role             { return RoleOwner }
func (OwnerStanding) Status() ApprovalStatus { return StatusApproved }
func (OwnerStanding) isStanding()            {}

// PendingManagerStanding is a registered manager awaiting the owner's approval.
type PendingManagerStanding struct{}

func (PendingManagerStanding) Role() Role             { return RoleManagerPending }
func (PendingManagerStanding) Status() ApprovalStatus { return StatusPending }
func (PendingManagerStanding) isStanding()            {}

// ApprovedManagerStanding binds a manager to exactly one factory.
// FactoryName is a snapshot taken at approval time and is not kept in sync.
type ApprovedManagerStanding struct {
	FactoryID   string
	FactoryName string
	ApprovedAt  time.Time
}

func (ApprovedManagerStanding) Role() Role             { return RoleManager }
func (ApprovedManagerStanding) Status() ApprovalStatus { return StatusApproved }
func (ApprovedManagerStanding) isStanding()            {}

// Identity represents a person with access to the app.
type Identity struct {
	IdentityID string    `json:"identityID"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Standing   Standing  `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsOwner reports whether the identity holds the owner standing.
func (i Identity) IsOwner() bool {
	_, ok := i.Standing.(OwnerStanding)
	return ok
}

// AssignedFactory returns the factory binding of an approved manager.
func (i Identity) AssignedFactory() (ApprovedManagerStanding, bool) {
	s, ok := i.Standing.(ApprovedManagerStanding)
	return s, ok
}

// Scope derives the factory restriction that applies to this identity.
func (i Identity) Scope() Scope {
	switch s := i.Standing.(type) {
	case OwnerStanding:
		return Scope{IdentityID: i.IdentityID, Owner: true}
	case ApprovedManagerStanding:
		return Scope{IdentityID: i.IdentityID, FactoryID: s.FactoryID, FactoryName: s.FactoryName}
	default:
		return Scope{IdentityID: i.IdentityID}
	}
}

// Credential is the stored secret used by the shared login path.
type Credential struct {
	IdentityID   string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
