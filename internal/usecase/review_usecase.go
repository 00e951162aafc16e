package usecase

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to leave a review.
type CreateReviewInput struct {
	ReviewableType entity.ReviewableType
	ReviewableID   uuid.UUID
	Rating         int
	Comment        string
}

// UpdateReviewInput defines the updatable review fields. Nil pointers leave
// the corresponding field untouched.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ListReviewsInput defines the review listing parameters.
type ListReviewsInput struct {
	ReviewableType entity.ReviewableType
	ReviewableID   uuid.UUID
	Page           int
	PerPage        int
}

// --- Output DTOs ---

// ReviewListOutput returns a page of reviews with the total count and the
// aggregate rating of the reviewed resource.
type ReviewListOutput struct {
	Reviews       []*entity.Review
	Total         int64
	AverageRating float64
}

// ReviewUsecase defines the interface for review business operations.
type ReviewUsecase interface {
	// Create leaves a review on an existing resource. One review per user
	// per resource; the target must exist for its declared type. Supplier
	// aggregates are resynced in the same transaction.
	Create(ctx context.Context, actor entity.Actor, input *CreateReviewInput) (*entity.Review, error)

	// List retrieves reviews for a resource. Public.
	List(ctx context.Context, input *ListReviewsInput) (*ReviewListOutput, error)

	// Update modifies a review. Allowed for the reviewer or an admin.
	Update(ctx context.Context, actor entity.Actor, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// Delete removes a review. Allowed for the reviewer or an admin.
	Delete(ctx context.Context, actor entity.Actor, reviewID uuid.UUID) error
}
