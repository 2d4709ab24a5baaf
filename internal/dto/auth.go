package dto

import (
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// --- Auth DTOs ---

// LoginRequest is shared by the owner and manager sign-in routes.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterManagerRequest registers a manager awaiting approval.
type RegisterManagerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ApproveManagerRequest names the factory a manager is bound to.
type ApproveManagerRequest struct {
	FactoryID string `json:"factory_id" binding:"required"`
}

// IdentityResponse is the users record in its normative field names.
type IdentityResponse struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name,omitempty"`
	Role                string     `json:"role"`
	Status              string     `json:"status"`
	AssignedFactory     *string    `json:"assigned_factory,omitempty"`
	AssignedFactoryName *string    `json:"assigned_factory_name,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// SessionResponse is returned by sign-in and session restore.
type SessionResponse struct {
	Token     string           `json:"token,omitempty"`
	ExpiresAt time.Time        `json:"expires_at"`
	Identity  IdentityResponse `json:"identity"`
}

// ListIdentitiesResponse wraps a list of identities.
type ListIdentitiesResponse struct {
	Identities []IdentityResponse `json:"identities"`
}

// ToIdentityResponse converts domain.Identity to DTO.
func ToIdentityResponse(i *domain.Identity) IdentityResponse {
	resp := IdentityResponse{
		ID:        i.IdentityID,
		Email:     i.Email,
		Name:      i.Name,
		CreatedAt: i.CreatedAt,
	}
	if i.Standing != nil {
		resp.Role = string(i.Standing.Role())
		resp.Status = string(i.Standing.Status())
	}
	if s, ok := i.AssignedFactory(); ok {
		factoryID, factoryName, approvedAt := s.FactoryID, s.FactoryName, s.ApprovedAt
		resp.AssignedFactory = &factoryID
		resp.AssignedFactoryName = &factoryName
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

// ToListIdentitiesResponse converts a slice of domain.Identity to DTO.
func ToListIdentitiesResponse(is []domain.Identity) ListIdentitiesResponse {
	list := make([]IdentityResponse, len(is))
	for i := range is {
		list[i] = ToIdentityResponse(&is[i])
	}
	return ListIdentitiesResponse{Identities: list}
}

// ToSessionResponse converts a session and its signed token to DTO.
func ToSessionResponse(s *domain.Session, token string, expiresAt time.Time) SessionResponse {
	return SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  ToIdentityResponse(&s.Identity),
	}
}
