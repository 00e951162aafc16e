package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// A CHECK constraint keeps stock_quantity non-negative as a last line of
// defense behind the application-level stock invariant.
type ProductModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Description       string     `gorm:"type:text"`
	Category          string     `gorm:"type:varchar(100);not null;index"`
	Subcategory       string     `gorm:"type:varchar(100)"`
	Price             float64    `gorm:"type:decimal(12,2);not null"`
	Unit              string     `gorm:"type:varchar(30);not null"`
	StockQuantity     int        `gorm:"not null;default:0;check:stock_quantity >= 0"`
	MinimumOrder      int        `gorm:"not null;default:1"`
	Status            string     `gorm:"type:varchar(20);not null;default:'active';index"`
	ImageURLs         []string   `gorm:"column:image_urls;type:jsonb;serializer:json"`
	Tags              []string   `gorm:"type:jsonb;serializer:json"`
	Brand             string     `gorm:"type:varchar(100)"`
	OriginCountry     string     `gorm:"type:varchar(100)"`
	ExpiryDate        *time.Time `gorm:"type:date"`
	ManufacturingDate *time.Time `gorm:"type:date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
