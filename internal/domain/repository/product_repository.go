// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	SupplierID  uuid.UUID            // Zero value matches all suppliers.
	Category    string               // Zero value matches all categories.
	Subcategory string               // Zero value matches all subcategories.
	Status      entity.ProductStatus // Zero value matches all statuses.
	Search      string               // Matches against name, brand, and tags.
	MinPrice    float64              // Zero means no lower bound.
	MaxPrice    float64              // Zero means no upper bound.
	InStockOnly bool                 // Restricts to products with stock available.
	Limit       int
	Offset      int
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product holding a row lock until the
	// surrounding transaction ends. Must only be called inside a transaction;
	// concurrent stock adjustments serialize on this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter along with the total count.
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, int64, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
