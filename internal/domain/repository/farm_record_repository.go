// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFarmRecordNotFound is returned when a farm record is not found.
var ErrFarmRecordNotFound = errors.New("farm record not found")

// FarmRecordListFilter narrows farm record listings.
type FarmRecordListFilter struct {
	FarmerID uuid.UUID             // Required; records are private to their owner.
	Type     entity.FarmRecordType // Zero value matches all types.
	CropType string                // Zero value matches all crops.
	From     time.Time             // Zero value means no lower bound on record date.
	To       time.Time             // Zero value means no upper bound on record date.
	Limit    int
	Offset   int
}

// FarmRecordSummary aggregates a farmer's records over a period.
type FarmRecordSummary struct {
	TotalExpenses float64 // Sum of expense record amounts.
	TotalSales    float64 // Sum of sale record amounts.
	RecordCount   int64   // Number of records in the period.
}

// FarmRecordRepository defines the interface for farm record persistence.
type FarmRecordRepository interface {
	// Create persists a new farm record.
	Create(ctx context.Context, record *entity.FarmRecord) error

	// FindByID retrieves a farm record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FarmRecord, error)

	// List retrieves farm records matching the filter along with the total count.
	List(ctx context.Context, filter FarmRecordListFilter) ([]*entity.FarmRecord, int64, error)

	// Summarize aggregates expenses and sales for a farmer over a period.
	Summarize(ctx context.Context, farmerID uuid.UUID, from, to time.Time) (*FarmRecordSummary, error)

	// Update modifies an existing farm record.
	Update(ctx context.Context, record *entity.FarmRecord) error

	// Delete removes a farm record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
