// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cliniweb/internal/domain/entity"
)

// ErrCredentialNotFound is a domain-specific error returned when no
// credential matches the requested identifier. The application layer decides
// what the client learns about it.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type CredentialRepository interface {
	// Insert persists a new credential record. The store enforces identifier
	// uniqueness; a violated insert is rejected, never overwritten.
	Insert(ctx context.Context, credential *entity.Credential) error

	// FindByIdentifier retrieves a single credential by its exact identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error)
}
