package entity

import (
	"time"

	"github.com/google/uuid"
)

// FarmRecordType classifies a farm activity entry.
type FarmRecordType string

const (
	FarmRecordTypePlanting    FarmRecordType = "planting"
	FarmRecordTypeFertilizing FarmRecordType = "fertilizing"
	FarmRecordTypeSpraying    FarmRecordType = "spraying"
	FarmRecordTypeHarvest     FarmRecordType = "harvest"
	FarmRecordTypeExpense     FarmRecordType = "expense"
	FarmRecordTypeSale        FarmRecordType = "sale"
)

// IsValid checks if the FarmRecordType is a valid value.
func (t FarmRecordType) IsValid() bool {
	switch t {
	case FarmRecordTypePlanting, FarmRecordTypeFertilizing, FarmRecordTypeSpraying,
		FarmRecordTypeHarvest, FarmRecordTypeExpense, FarmRecordTypeSale:
		return true
	default:
		return false
	}
}

// FarmRecord is a farmer's private journal entry tracking a farm activity,
// expense, or sale. Records are only visible to their owner and admins.
type FarmRecord struct {
	ID          uuid.UUID      // The unique identifier for the record.
	FarmerID    uuid.UUID      // The owning farmer.
	Type        FarmRecordType // Kind of activity recorded.
	CropType    string         // Crop the record concerns, e.g. "maize".
	Description string         // Free-text notes.
	Quantity    float64        // Amount planted, harvested, or sold.
	Unit        string         // Unit for the quantity, e.g. "kg", "acre".
	Amount      float64        // Money spent or earned in TZS, for expense and sale records.
	RecordDate  time.Time      // The day the activity happened.
	CreatedAt   time.Time      // Timestamp of creation.
	UpdatedAt   time.Time      // Timestamp of the last modification.
}
