package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListActivityInput defines the audit log listing parameters.
type ListActivityInput struct {
	ActorID      uuid.UUID
	Action       string
	ResourceType string
	ResourceID   uuid.UUID
	Page         int
	PerPage      int
}

// --- Output DTOs ---

// ActivityListOutput returns a page of audit rows with the total count.
type ActivityListOutput struct {
	Logs  []*entity.ActivityLog
	Total int64
}

// ActivityUsecase defines the interface for reading the audit log.
// Writing happens inside the mutating services, never through this interface.
type ActivityUsecase interface {
	// List retrieves audit rows matching the filter, newest first. Admin only.
	List(ctx context.Context, actor entity.Actor, input *ListActivityInput) (*ActivityListOutput, error)
}

// Filter converts listing input into a repository filter.
func (in *ListActivityInput) Filter() repository.ActivityListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.ActivityListFilter{
		ActorID:      in.ActorID,
		Action:       in.Action,
		ResourceType: in.ResourceType,
		ResourceID:   in.ResourceID,
		Limit:        perPage,
		Offset:       (page - 1) * perPage,
	}
}
