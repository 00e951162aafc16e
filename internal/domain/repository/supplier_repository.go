// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for supplier persistence.
var (
	// ErrSupplierNotFound is returned when a supplier profile is not found.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrDuplicateSupplier is returned when a user already has a supplier profile.
	ErrDuplicateSupplier = errors.New("user already has a supplier profile")
)

// SupplierListFilter narrows supplier listings.
type SupplierListFilter struct {
	Type               entity.SupplierType       // Zero value matches all types.
	VerificationStatus entity.VerificationStatus // Zero value matches all statuses.
	Region             string                    // Zero value matches all regions.
	Search             string                    // Matches against the company name.
	Limit              int
	Offset             int
}

// SupplierRepository defines the interface for supplier profile persistence.
type SupplierRepository interface {
	// Create persists a new supplier profile.
	// Returns ErrDuplicateSupplier when the user already has one.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByUserID retrieves the supplier profile belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error)

	// List retrieves supplier profiles matching the filter along with the total count.
	List(ctx context.Context, filter SupplierListFilter) ([]*entity.Supplier, int64, error)

	// Update modifies an existing supplier profile.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// UpdateRating recalculates and stores the aggregate rating and review count.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error
}
