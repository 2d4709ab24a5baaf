package domain

import "time"

// SessionRecord is the persisted row behind a bearer token.
type SessionRecord struct {
	SessionID  string
	IdentityID string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
}

// IsLive reports whether the session may still be honored at the given instant.
func (s SessionRecord) IsLive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Session is an authenticated session resolved to its identity.
type Session struct {
	SessionID string
	Identity  Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Scope returns the factory restriction of the session's identity.
func (s Session) Scope() Scope { return s.Identity.Scope() }
