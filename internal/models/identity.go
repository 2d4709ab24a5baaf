package models

import "time"

// Identity is a row of the users table. Role and Status are stored as the two
// raw discriminator columns; mapping.ToDomainIdentity folds them into a Standing.
type Identity struct {
	IdentityID          string     `db:"id"`
	Email               string     `db:"email"`
	Name                *string    `db:"name"`
	Role                string     `db:"role"`
	Status              string     `db:"status"`
	AssignedFactory     *string    `db:"assigned_factory"`
	AssignedFactoryName *string    `db:"assigned_factory_name"`
	ApprovedAt          *time.Time `db:"approved_at"`
	CreatedAt           time.Time  `db:"created_at"`
}

// Credential is a row of the credentials table.
type Credential struct {
	IdentityID   string    `db:"identity_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Session is a row of the sessions table.
type Session struct {
	SessionID  string     `db:"session_id"`
	IdentityID string     `db:"identity_id"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
}
