// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new credential.
type RegisterInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// LoginInput defines the data required to log in. Role is the role the
// client claims to hold; it must match the stored one.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the post-login routing target for the stored role.
type LoginOutput struct {
	RedirectTo string
}

// AuthUsecase defines the interface for credential-handling operations.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type AuthUsecase interface {
	// Register validates input presence, hashes the password, and persists a
	// new credential record.
	Register(ctx context.Context, input *RegisterInput) error

	// Login validates input presence and verifies identifier, claimed role,
	// and password against the stored credential. Every failure mode returns
	// the same generic error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
