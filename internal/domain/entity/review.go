package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewableType names the kind of resource a review is attached to. The
// pair (ReviewableType, ReviewableID) forms a tagged reference so a review
// row can never point at an ambiguous target.
type ReviewableType string

const (
	ReviewableTypeProduct      ReviewableType = "product"
	ReviewableTypeSupplier     ReviewableType = "supplier"
	ReviewableTypeContent      ReviewableType = "content"
	ReviewableTypeConsultation ReviewableType = "consultation"
)

// IsValid checks if the ReviewableType is a valid value.
func (t ReviewableType) IsValid() bool {
	switch t {
	case ReviewableTypeProduct, ReviewableTypeSupplier, ReviewableTypeContent, ReviewableTypeConsultation:
		return true
	default:
		return false
	}
}

// Review is a rating and optional comment left by a user on a product,
// supplier, content piece, or consultation.
type Review struct {
	ID             uuid.UUID      // The unique identifier for the review.
	UserID         uuid.UUID      // The reviewing user.
	ReviewableType ReviewableType // Kind of the reviewed resource.
	ReviewableID   uuid.UUID      // Identifier of the reviewed resource.
	Rating         int            // Star rating between 1 and 5 inclusive.
	Comment        string         // Optional free-text comment.
	CreatedAt      time.Time      // Timestamp of creation.
	UpdatedAt      time.Time      // Timestamp of the last modification.
}

// ValidRating reports whether the rating falls in the accepted 1 to 5 range.
func (r *Review) ValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
