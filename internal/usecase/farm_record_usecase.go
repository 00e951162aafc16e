package usecase

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateFarmRecordInput defines the data required to journal a farm activity.
type CreateFarmRecordInput struct {
	Type        entity.FarmRecordType
	CropType    string
	Description string
	Quantity    float64
	Unit        string
	Amount      float64
	RecordDate  time.Time
}

// UpdateFarmRecordInput defines the updatable farm record fields. Nil
// pointers leave the corresponding field untouched.
type UpdateFarmRecordInput struct {
	Type        *entity.FarmRecordType
	CropType    *string
	Description *string
	Quantity    *float64
	Unit        *string
	Amount      *float64
	RecordDate  *time.Time
}

// ListFarmRecordsInput defines the farm record listing parameters.
type ListFarmRecordsInput struct {
	Type     entity.FarmRecordType
	CropType string
	From     time.Time
	To       time.Time
	Page     int
	PerPage  int
}

// --- Output DTOs ---

// FarmRecordListOutput returns a page of farm records with the total count.
type FarmRecordListOutput struct {
	Records []*entity.FarmRecord
	Total   int64
}

// FarmRecordUsecase defines the interface for farm journal business operations.
// Records are private: every operation is scoped to the acting farmer, with
// admins allowed through for support cases.
type FarmRecordUsecase interface {
	// Create journals a new activity for the acting farmer.
	Create(ctx context.Context, actor entity.Actor, input *CreateFarmRecordInput) (*entity.FarmRecord, error)

	// GetByID retrieves a record. Allowed for the owner or an admin.
	GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.FarmRecord, error)

	// List retrieves the actor's records matching the filter.
	List(ctx context.Context, actor entity.Actor, input *ListFarmRecordsInput) (*FarmRecordListOutput, error)

	// Summary aggregates the actor's expenses and sales over a period.
	Summary(ctx context.Context, actor entity.Actor, from, to time.Time) (*repository.FarmRecordSummary, error)

	// Update modifies a record. Allowed for the owner or an admin.
	Update(ctx context.Context, actor entity.Actor, recordID uuid.UUID, input *UpdateFarmRecordInput) (*entity.FarmRecord, error)

	// Delete removes a record. Allowed for the owner or an admin.
	Delete(ctx context.Context, actor entity.Actor, recordID uuid.UUID) error
}

// Filter converts listing input into a repository filter scoped to a farmer.
func (in *ListFarmRecordsInput) Filter(farmerID uuid.UUID) repository.FarmRecordListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.FarmRecordListFilter{
		FarmerID: farmerID,
		Type:     in.Type,
		CropType: in.CropType,
		From:     in.From,
		To:       in.To,
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}
}
