package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationModel is the GORM-specific struct for the 'consultations' table.
type ConsultationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	OfficerID   *uuid.UUID `gorm:"type:uuid;index"`
	Subject     string     `gorm:"type:varchar(255);not null"`
	Question    string     `gorm:"type:text;not null"`
	Answer      string     `gorm:"type:text"`
	CropType    string     `gorm:"type:varchar(100)"`
	Category    string     `gorm:"type:varchar(100);index"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ImageURLs   []string   `gorm:"column:image_urls;type:jsonb;serializer:json"`
	AcceptedAt  *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsultationModel) TableName() string {
	return "consultations"
}
