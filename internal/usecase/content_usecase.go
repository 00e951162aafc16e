package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateContentInput defines the data required to draft a content piece.
type CreateContentInput struct {
	Title         string
	Body          string
	Type          entity.ContentType
	Language      entity.Language
	Category      string
	Tags          []string
	CoverImageURL string
	VideoURL      string
}

// UpdateContentInput defines the updatable content fields. Nil pointers
// leave the corresponding field untouched.
type UpdateContentInput struct {
	Title         *string
	Body          *string
	Type          *entity.ContentType
	Language      *entity.Language
	Category      *string
	Tags          []string
	CoverImageURL *string
	VideoURL      *string
}

// ListContentInput defines the content listing parameters.
type ListContentInput struct {
	AuthorID      uuid.UUID
	Type          entity.ContentType
	Status        entity.ContentStatus
	Language      entity.Language
	Category      string
	Search        string
	PublishedOnly bool
	Page          int
	PerPage       int
}

// --- Output DTOs ---

// ContentListOutput returns a page of content pieces with the total count.
type ContentListOutput struct {
	Items []*entity.Content
	Total int64
}

// ContentUsecase defines the interface for educational content business operations.
type ContentUsecase interface {
	// Create drafts a new content piece authored by the actor. Restricted to
	// extension officers and admins.
	Create(ctx context.Context, actor entity.Actor, input *CreateContentInput) (*entity.Content, error)

	// GetBySlug retrieves a published piece by slug and bumps its view
	// counter. Drafts and scheduled pieces are only returned to their author
	// or an admin.
	GetBySlug(ctx context.Context, actor entity.Actor, slug string) (*entity.Content, error)

	// GetByID retrieves a piece by ID under the same visibility rules.
	GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Content, error)

	// List retrieves content pieces matching the filter. Public callers see
	// published pieces only.
	List(ctx context.Context, input *ListContentInput) (*ContentListOutput, error)

	// Update modifies a piece. Allowed for the author or an admin.
	Update(ctx context.Context, actor entity.Actor, contentID uuid.UUID, input *UpdateContentInput) (*entity.Content, error)

	// Publish makes a piece publicly visible. The publication timestamp is
	// stamped on the first publish only. Allowed for the author or an admin.
	Publish(ctx context.Context, actor entity.Actor, contentID uuid.UUID) (*entity.Content, error)

	// Archive withdraws a piece from the public feed. Allowed for the author
	// or an admin.
	Archive(ctx context.Context, actor entity.Actor, contentID uuid.UUID) (*entity.Content, error)

	// Delete removes a piece. Allowed for the author or an admin.
	Delete(ctx context.Context, actor entity.Actor, contentID uuid.UUID) error
}

// Filter converts listing input into a repository filter.
func (in *ListContentInput) Filter() repository.ContentListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.ContentListFilter{
		AuthorID:      in.AuthorID,
		Type:          in.Type,
		Status:        in.Status,
		Language:      in.Language,
		Category:      in.Category,
		Search:        in.Search,
		PublishedOnly: in.PublishedOnly,
		Limit:         perPage,
		Offset:        (page - 1) * perPage,
	}
}
