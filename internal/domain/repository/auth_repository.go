// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no credential exists for the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the interface for login credential persistence.
type CredentialRepository interface {
	// Create persists a new credential for a user.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail retrieves a credential by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindByUserID retrieves the credential belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
