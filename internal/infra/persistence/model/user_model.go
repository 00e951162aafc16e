// Package model contains the GORM-specific database models.
// These structs are decoupled from the domain entities to separate persistence concerns.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName         string     `gorm:"type:varchar(100);not null"`
	LastName          string     `gorm:"type:varchar(100);not null"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone             string     `gorm:"type:varchar(20)"`
	Role              string     `gorm:"type:varchar(30);not null;index"`
	Status            string     `gorm:"type:varchar(20);not null;default:'active';index"`
	Region            string     `gorm:"type:varchar(100);index"`
	District          string     `gorm:"type:varchar(100)"`
	Ward              string     `gorm:"type:varchar(100)"`
	PreferredLanguage string     `gorm:"type:varchar(5);not null;default:'sw'"`
	ProfileImageURL   string     `gorm:"type:text"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
