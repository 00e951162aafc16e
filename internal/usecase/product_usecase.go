package usecase

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a product.
type CreateProductInput struct {
	Name              string
	Description       string
	Category          string
	Subcategory       string
	Price             float64
	Unit              string
	StockQuantity     int
	MinimumOrder      int
	ImageURLs         []string
	Tags              []string
	Brand             string
	OriginCountry     string
	ExpiryDate        *time.Time
	ManufacturingDate *time.Time
}

// UpdateProductInput defines the updatable product fields. Nil pointers
// leave the corresponding field untouched.
type UpdateProductInput struct {
	Name              *string
	Description       *string
	Category          *string
	Subcategory       *string
	Price             *float64
	Unit              *string
	MinimumOrder      *int
	Status            *entity.ProductStatus
	ImageURLs         []string
	Tags              []string
	Brand             *string
	OriginCountry     *string
	ExpiryDate        *time.Time
	ManufacturingDate *time.Time
}

// ListProductsInput defines the product listing parameters.
type ListProductsInput struct {
	SupplierID  uuid.UUID
	Category    string
	Subcategory string
	Status      entity.ProductStatus
	Search      string
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	Page        int
	PerPage     int
}

// AdjustStockInput defines a stock adjustment request.
type AdjustStockInput struct {
	ProductID uuid.UUID
	Action    entity.StockAction
	Quantity  int
}

// --- Output DTOs ---

// ProductListOutput returns a page of products with the total count.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// AdjustStockOutput returns the stock level before and after the adjustment.
type AdjustStockOutput struct {
	Product       *entity.Product
	PreviousStock int
	NewStock      int
}

// ProductUsecase defines the interface for product business operations.
type ProductUsecase interface {
	// Create lists a new product under the actor's verified supplier profile.
	Create(ctx context.Context, actor entity.Actor, input *CreateProductInput) (*entity.Product, error)

	// GetByID retrieves a product. Public.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter. Public.
	List(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// Update modifies a product. Allowed for the owning supplier or an admin.
	Update(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product. Allowed for the owning supplier or an admin.
	Delete(ctx context.Context, actor entity.Actor, productID uuid.UUID) error

	// AdjustStock applies an add, subtract, or set adjustment under a row
	// lock. Subtracting more than the available stock fails without any
	// partial decrement. Allowed for the owning supplier or an admin.
	AdjustStock(ctx context.Context, actor entity.Actor, input *AdjustStockInput) (*AdjustStockOutput, error)
}

// Filter converts listing input into a repository filter.
func (in *ListProductsInput) Filter() repository.ProductListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.ProductListFilter{
		SupplierID:  in.SupplierID,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Status:      in.Status,
		Search:      in.Search,
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MaxPrice,
		InStockOnly: in.InStockOnly,
		Limit:       perPage,
		Offset:      (page - 1) * perPage,
	}
}
