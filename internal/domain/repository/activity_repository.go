// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityListFilter narrows activity log listings.
type ActivityListFilter struct {
	ActorID      uuid.UUID // Zero value matches all actors.
	Action       string    // Zero value matches all actions.
	ResourceType string    // Zero value matches all resource types.
	ResourceID   uuid.UUID // Zero value matches all resources.
	Limit        int
	Offset       int
}

// ActivityLogRepository defines the interface for the append-only audit log.
// Rows are inserted and queried, never updated or deleted.
type ActivityLogRepository interface {
	// Create appends a new log row. When called through a transaction-bound
	// factory the row commits or rolls back with the mutation it describes.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List retrieves log rows matching the filter, newest first, along with
	// the total count.
	List(ctx context.Context, filter ActivityListFilter) ([]*entity.ActivityLog, int64, error)
}
