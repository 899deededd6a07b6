// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the single persisted entity of the system: one login
// credential per registered account.
//
// The identifier is the user-facing handle (an email address) and is unique
// across all records. Lookups are exact-match: no case normalization and no
// trimming is applied anywhere, so "A@x.com" and "a@x.com" are distinct
// accounts.
//
// The role is stored as the client submitted it. Only the closed set known
// to Role carries a post-login destination; anything else simply never
// matches a claimed role at login.
type Credential struct {
	ID           uuid.UUID // Unique ID for this credential record.
	Identifier   string    // Unique login handle (email), exact-match semantics.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Role         string    // Declared account role, free-form at the store boundary.
	CreatedAt    time.Time // Timestamp of registration. Records are create-only.
	UpdatedAt    time.Time
}
