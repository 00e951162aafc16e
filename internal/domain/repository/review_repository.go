// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user has already reviewed the resource.
	ErrDuplicateReview = errors.New("user already reviewed this resource")
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the user
	// has already reviewed the same (type, id) target.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByReviewable retrieves reviews for a resource along with the total count.
	ListByReviewable(ctx context.Context, reviewableType entity.ReviewableType, reviewableID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error)

	// ListByUser retrieves the reviews a user has written.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error)

	// AverageRating computes the mean rating and review count for a resource.
	AverageRating(ctx context.Context, reviewableType entity.ReviewableType, reviewableID uuid.UUID) (float64, int, error)

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
