package entity

import (
	"time"

	"github.com/google/uuid"

	"adinas/internal/errors"
)

// ErrInsufficientStock is returned when a subtract adjustment would drive the
// stock quantity below zero. The quantity is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock quantity")

// ProductStatus represents the listing state of a product.
type ProductStatus string

const (
	// ProductStatusActive means the product is listed and purchasable.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusInactive means the supplier has unlisted the product.
	ProductStatusInactive ProductStatus = "inactive"
	// ProductStatusOutOfStock means the stock quantity has reached zero.
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	default:
		return false
	}
}

// StockAction selects how a stock adjustment is applied.
type StockAction string

const (
	// StockActionAdd increases the stock quantity.
	StockActionAdd StockAction = "add"
	// StockActionSubtract decreases the stock quantity, failing rather than going negative.
	StockActionSubtract StockAction = "subtract"
	// StockActionSet overwrites the stock quantity.
	StockActionSet StockAction = "set"
)

// IsValid checks if the StockAction is a valid value.
func (a StockAction) IsValid() bool {
	switch a {
	case StockActionAdd, StockActionSubtract, StockActionSet:
		return true
	default:
		return false
	}
}

// ProductCategory is one top-level catalog category with its subcategories.
type ProductCategory struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// ProductCategories is the catalog taxonomy served by the public
// categories endpoint.
var ProductCategories = []ProductCategory{
	{Key: "seeds", Name: "Seeds", Subcategories: []string{"maize", "rice", "beans", "vegetables", "fruits"}},
	{Key: "fertilizers", Name: "Fertilizers", Subcategories: []string{"organic", "inorganic", "foliar", "compound"}},
	{Key: "pesticides", Name: "Pesticides", Subcategories: []string{"herbicides", "insecticides", "fungicides", "rodenticides"}},
	{Key: "tools", Name: "Tools & Equipment", Subcategories: []string{"hand_tools", "machinery", "irrigation", "storage"}},
	{Key: "livestock", Name: "Livestock Supplies", Subcategories: []string{"feed", "medicine", "equipment", "supplements"}},
	{Key: "processing", Name: "Processing Equipment", Subcategories: []string{"milling", "drying", "packaging", "storage"}},
}

// Product is a marketplace listing owned by a supplier.
type Product struct {
	ID                uuid.UUID     // The unique identifier for the product.
	SupplierID        uuid.UUID     // The owning supplier profile.
	Name              string        // Display name.
	Description       string        // Long-form description.
	Category          string        // Top-level category, e.g. "seeds".
	Subcategory       string        // Optional subcategory, e.g. "maize".
	Price             float64       // Unit price in TZS.
	Unit              string        // Selling unit, e.g. "kg", "bag".
	StockQuantity     int           // Units available; never negative.
	MinimumOrder      int           // Smallest accepted order size.
	Status            ProductStatus // Listing state.
	ImageURLs         []string      // Public URLs of uploaded product images.
	Tags              []string      // Search tags.
	Brand             string        // Optional brand name.
	OriginCountry     string        // Optional country of origin.
	ExpiryDate        *time.Time    // Optional expiry date for perishables.
	ManufacturingDate *time.Time    // Optional manufacturing date.
	CreatedAt         time.Time     // Timestamp of listing creation.
	UpdatedAt         time.Time     // Timestamp of the last modification.
}

// InStock reports whether any units are available.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// AdjustStock applies a stock action and returns the quantity before the
// change. Subtract fails with ErrInsufficientStock when quantity exceeds the
// available stock, leaving the product untouched. Status follows the
// quantity: it flips to out_of_stock at zero and back to active when stock
// returns, unless the supplier has deliberately set the listing inactive.
func (p *Product) AdjustStock(action StockAction, quantity int) (previous int, err error) {
	previous = p.StockQuantity

	switch action {
	case StockActionAdd:
		p.StockQuantity += quantity
	case StockActionSubtract:
		if quantity > p.StockQuantity {
			return previous, errors.WithStack(ErrInsufficientStock)
		}
		p.StockQuantity -= quantity
	case StockActionSet:
		p.StockQuantity = quantity
	default:
		return previous, errors.Errorf("unknown stock action: %s", action)
	}

	if p.Status != ProductStatusInactive {
		if p.StockQuantity == 0 {
			p.Status = ProductStatusOutOfStock
		} else {
			p.Status = ProductStatusActive
		}
	}

	return previous, nil
}
