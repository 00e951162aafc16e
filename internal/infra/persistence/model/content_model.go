package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentModel is the GORM-specific struct for the 'contents' table.
type ContentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Slug          string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Body          string     `gorm:"type:text;not null"`
	Type          string     `gorm:"type:varchar(20);not null;index"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	Language      string     `gorm:"type:varchar(5);not null;default:'sw'"`
	Category      string     `gorm:"type:varchar(100);index"`
	Tags          []string   `gorm:"type:jsonb;serializer:json"`
	CoverImageURL string     `gorm:"type:text"`
	VideoURL      string     `gorm:"type:text"`
	ViewsCount    int        `gorm:"not null;default:0"`
	PublishedAt   *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "contents"
}
