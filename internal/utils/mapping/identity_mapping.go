package mapping

import (
	"fmt"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/models"
)

// ToDomainIdentity classifies a stored users row into its Standing.
//
//	role=owner                          -> OwnerStanding (status is not consulted)
//	role=manager, status=approved       -> ApprovedManagerStanding, factory required
//	role=manager_pending or pending     -> PendingManagerStanding
//	anything else                       -> ErrIllegalStanding
func ToDomainIdentity(m models.Identity) (domain.Identity, error) {
	d := domain.Identity{
		IdentityID: m.IdentityID,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
	if m.Name != nil {
		d.Name = *m.Name
	}

	role := domain.Role(m.Role)
	status := domain.ApprovalStatus(m.Status)
	switch {
	case role == domain.RoleOwner:
		d.Standing = domain.OwnerStanding{}
	case role == domain.RoleManager && status == domain.StatusApproved:
		if m.AssignedFactory == nil || *m.AssignedFactory == "" {
			return domain.Identity{}, fmt.Errorf("%w: approved manager %s has no factory", apperrors.ErrIllegalStanding, m.IdentityID)
		}
		s := domain.ApprovedManagerStanding{FactoryID: *m.AssignedFactory}
		if m.AssignedFactoryName != nil {
			s.FactoryName = *m.AssignedFactoryName
		}
		if m.ApprovedAt != nil {
			s.ApprovedAt = *m.ApprovedAt
		}
		d.Standing = s
	case role == domain.RoleManagerPending || status == domain.StatusPending:
		d.Standing = domain.PendingManagerStanding{}
	default:
		return domain.Identity{}, fmt.Errorf("%w: role=%q status=%q", apperrors.ErrIllegalStanding, m.Role, m.Status)
	}
	return d, nil
}

// ToModelIdentity flattens a domain Identity back to its row form.
func ToModelIdentity(d domain.Identity) models.Identity {
	m := models.Identity{
		IdentityID: d.IdentityID,
		Email:      d.Email,
		CreatedAt:  d.CreatedAt,
	}
	if d.Name != "" {
		name := d.Name
		m.Name = &name
	}
	if d.Standing != nil {
		m.Role = string(d.Standing.Role())
		m.Status = string(d.Standing.Status())
	}
	if s, ok := d.Standing.(domain.ApprovedManagerStanding); ok {
		factoryID, factoryName, approvedAt := s.FactoryID, s.FactoryName, s.ApprovedAt
		m.AssignedFactory = &factoryID
		m.AssignedFactoryName = &factoryName
		m.ApprovedAt = &approvedAt
	}
	return m
}

// ToDomainIdentitySlice converts rows, failing on the first illegal one.
func ToDomainIdentitySlice(ms []models.Identity) ([]domain.Identity, error) {
	ds := make([]domain.Identity, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainIdentity(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func ToDomainCredential(m models.Credential) domain.Credential {
	return domain.Credential(m)
}

func ToModelCredential(d domain.Credential) models.Credential {
	return models.Credential(d)
}

func ToDomainSessionRecord(m models.Session) domain.SessionRecord {
	return domain.SessionRecord(m)
}

func ToModelSession(d domain.SessionRecord) models.Session {
	return models.Session(d)
}
