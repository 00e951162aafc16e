package model

import (
	"time"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
)

// SupplierModel is the GORM-specific struct for the 'suppliers' table.
// The unique index on UserID backs the one-profile-per-user invariant.
type SupplierModel struct {
	ID                 uuid.UUID               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName        string                  `gorm:"type:varchar(255);not null"`
	BusinessLicense    string                  `gorm:"type:varchar(100)"`
	Type               string                  `gorm:"type:varchar(30);not null;index"`
	Description        string                  `gorm:"type:text"`
	Address            string                  `gorm:"type:text"`
	Region             string                  `gorm:"type:varchar(100);index"`
	District           string                  `gorm:"type:varchar(100)"`
	OperatingHours     []entity.OperatingHours `gorm:"type:jsonb;serializer:json"`
	DeliveryAreas      []string                `gorm:"type:jsonb;serializer:json"`
	VerificationStatus string                  `gorm:"type:varchar(20);not null;default:'pending';index"`
	Rating             float64                 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewsCount       int                     `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}
