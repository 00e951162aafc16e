// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for content persistence.
var (
	// ErrContentNotFound is returned when a content piece is not found.
	ErrContentNotFound = errors.New("content not found")
	// ErrDuplicateSlug is returned when the slug is already taken.
	ErrDuplicateSlug = errors.New("content slug already exists")
)

// ContentListFilter narrows content listings.
type ContentListFilter struct {
	AuthorID      uuid.UUID            // Zero value matches all authors.
	Type          entity.ContentType   // Zero value matches all types.
	Status        entity.ContentStatus // Zero value matches all statuses.
	Language      entity.Language      // Zero value matches all languages.
	Category      string               // Zero value matches all categories.
	Search        string               // Matches against title and tags.
	PublishedOnly bool                 // Restricts to pieces visible to the public now.
	Limit         int
	Offset        int
}

// ContentRepository defines the interface for educational content persistence.
type ContentRepository interface {
	// Create persists a new content piece.
	Create(ctx context.Context, content *entity.Content) error

	// FindByID retrieves a content piece by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error)

	// FindBySlug retrieves a content piece by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Content, error)

	// List retrieves content pieces matching the filter along with the total count.
	List(ctx context.Context, filter ContentListFilter) ([]*entity.Content, int64, error)

	// Update modifies an existing content piece.
	Update(ctx context.Context, content *entity.Content) error

	// IncrementViews bumps the raw view counter without touching updated_at.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// Delete removes a content piece by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
