package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index enforces one review per user per target.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_target"`
	ReviewableType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_reviews_user_target;index:idx_reviews_target"`
	ReviewableID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_target;index:idx_reviews_target"`
	Rating         int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment        string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
