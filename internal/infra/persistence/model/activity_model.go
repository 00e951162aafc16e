package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
// Rows are append-only; the repository exposes no update or delete.
type ActivityLogModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Action       string            `gorm:"type:varchar(50);not null;index"`
	ResourceType string            `gorm:"type:varchar(30);not null;index:idx_activity_logs_resource"`
	ResourceID   uuid.UUID         `gorm:"type:uuid;index:idx_activity_logs_resource"`
	Description  string            `gorm:"type:text"`
	Metadata     map[string]string `gorm:"type:jsonb;serializer:json"`
	IPAddress    string            `gorm:"type:varchar(45)"`
	UserAgent    string            `gorm:"type:varchar(255)"`
	CreatedAt    time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
