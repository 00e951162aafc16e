package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity action names recorded in the append-only log. One constant per
// mutating operation so log consumers can filter without string matching.
const (
	ActionUserRegistered        = "user.registered"
	ActionUserLoggedIn          = "user.logged_in"
	ActionUserUpdated           = "user.updated"
	ActionUserStatusChanged     = "user.status_changed"
	ActionUserDeleted           = "user.deleted"
	ActionPasswordChanged       = "user.password_changed"
	ActionSupplierCreated       = "supplier.created"
	ActionSupplierUpdated       = "supplier.updated"
	ActionSupplierVerified      = "supplier.verified"
	ActionSupplierRejected      = "supplier.rejected"
	ActionProductCreated        = "product.created"
	ActionProductUpdated        = "product.updated"
	ActionProductDeleted        = "product.deleted"
	ActionStockAdjusted         = "product.stock_adjusted"
	ActionContentCreated        = "content.created"
	ActionContentUpdated        = "content.updated"
	ActionContentPublished      = "content.published"
	ActionContentArchived       = "content.archived"
	ActionContentDeleted        = "content.deleted"
	ActionReviewCreated         = "review.created"
	ActionReviewUpdated         = "review.updated"
	ActionReviewDeleted         = "review.deleted"
	ActionConsultationAsked     = "consultation.asked"
	ActionConsultationTaken     = "consultation.accepted"
	ActionConsultationClosed    = "consultation.completed"
	ActionConsultationCancelled = "consultation.cancelled"
	ActionFarmRecordCreated     = "farm_record.created"
	ActionFarmRecordUpdated     = "farm_record.updated"
	ActionFarmRecordDeleted     = "farm_record.deleted"
	ActionMarketPriceUpserted   = "market_price.upserted"
	ActionWeatherUpserted       = "weather.upserted"
)

// ActivityLog is a single append-only audit row. Rows are written inside the
// same transaction as the mutation they describe and are never updated or
// deleted afterwards.
type ActivityLog struct {
	ID           uuid.UUID         // The unique identifier for the log row.
	ActorID      uuid.UUID         // The user who performed the action.
	Action       string            // One of the Action constants above.
	ResourceType string            // Kind of the affected resource, e.g. "product".
	ResourceID   uuid.UUID         // Identifier of the affected resource.
	Description  string            // Human-readable summary of the change.
	Metadata     map[string]string // Structured detail, e.g. old and new stock.
	IPAddress    string            // Remote address of the originating request.
	UserAgent    string            // User agent of the originating request.
	CreatedAt    time.Time         // Timestamp of the action.
}
