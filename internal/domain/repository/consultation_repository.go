// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrConsultationNotFound is returned when a consultation is not found.
var ErrConsultationNotFound = errors.New("consultation not found")

// ConsultationListFilter narrows consultation listings.
type ConsultationListFilter struct {
	FarmerID  uuid.UUID                 // Zero value matches all farmers.
	OfficerID uuid.UUID                 // Zero value matches all officers.
	Status    entity.ConsultationStatus // Zero value matches all statuses.
	Category  string                    // Zero value matches all categories.
	Limit     int
	Offset    int
}

// ConsultationRepository defines the interface for consultation persistence.
type ConsultationRepository interface {
	// Create persists a new consultation request.
	Create(ctx context.Context, consultation *entity.Consultation) error

	// FindByID retrieves a consultation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error)

	// List retrieves consultations matching the filter along with the total count.
	List(ctx context.Context, filter ConsultationListFilter) ([]*entity.Consultation, int64, error)

	// Update modifies an existing consultation.
	Update(ctx context.Context, consultation *entity.Consultation) error
}
