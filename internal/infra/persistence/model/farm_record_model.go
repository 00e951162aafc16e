package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmRecordModel is the GORM-specific struct for the 'farm_records' table.
type FarmRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	CropType    string    `gorm:"type:varchar(100);index"`
	Description string    `gorm:"type:text"`
	Quantity    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Unit        string    `gorm:"type:varchar(30)"`
	Amount      float64   `gorm:"type:decimal(14,2);not null;default:0"`
	RecordDate  time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmRecordModel) TableName() string {
	return "farm_records"
}
