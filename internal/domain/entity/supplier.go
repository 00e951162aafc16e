package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the trust state of a supplier profile. Transitions are
// one-way: a pending profile becomes verified or rejected, and neither of
// those states leads back to pending.
type VerificationStatus string

const (
	// VerificationPending is the initial state of every new supplier profile.
	VerificationPending VerificationStatus = "pending"
	// VerificationVerified marks a profile approved by an administrator.
	VerificationVerified VerificationStatus = "verified"
	// VerificationRejected marks a profile rejected by an administrator.
	VerificationRejected VerificationStatus = "rejected"
)

// String returns the string representation of the VerificationStatus.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving to next.
func (s VerificationStatus) CanTransitionTo(next VerificationStatus) bool {
	return s == VerificationPending &&
		(next == VerificationVerified || next == VerificationRejected)
}

// SupplierType categorizes what a supplier sells or provides.
type SupplierType string

const (
	// SupplierTypeInputDealer sells seeds, fertilizers, pesticides.
	SupplierTypeInputDealer SupplierType = "input_dealer"
	// SupplierTypeEquipment sells tools and machinery.
	SupplierTypeEquipment SupplierType = "equipment_supplier"
	// SupplierTypeServiceProvider offers services such as spraying or tillage.
	SupplierTypeServiceProvider SupplierType = "service_provider"
	// SupplierTypeCooperative is a farmer cooperative.
	SupplierTypeCooperative SupplierType = "cooperative"
	// SupplierTypeProcessor processes or buys produce.
	SupplierTypeProcessor SupplierType = "processor"
)

// String returns the string representation of the SupplierType.
func (t SupplierType) String() string {
	return string(t)
}

// SupplierTypeLabels maps each supplier type to its display label, served by
// the public types endpoint.
var SupplierTypeLabels = map[SupplierType]string{
	SupplierTypeInputDealer:     "Agricultural Input Dealer",
	SupplierTypeEquipment:       "Equipment Supplier",
	SupplierTypeServiceProvider: "Service Provider",
	SupplierTypeCooperative:     "Cooperative",
	SupplierTypeProcessor:       "Processor/Buyer",
}

// IsValid checks if the SupplierType is a valid value.
func (t SupplierType) IsValid() bool {
	switch t {
	case SupplierTypeInputDealer, SupplierTypeEquipment, SupplierTypeServiceProvider,
		SupplierTypeCooperative, SupplierTypeProcessor:
		return true
	default:
		return false
	}
}

// OperatingHours is one weekday's opening window for a supplier.
type OperatingHours struct {
	Day   string `json:"day"`   // Weekday name, e.g. "monday".
	Open  string `json:"open"`  // Opening time "HH:MM", empty when closed.
	Close string `json:"close"` // Closing time "HH:MM", empty when closed.
}

// Supplier is a marketplace seller profile. At most one Supplier exists per
// User; the invariant is enforced transactionally at creation time.
type Supplier struct {
	ID                 uuid.UUID          // The unique identifier for the supplier profile.
	UserID             uuid.UUID          // The owning user account.
	CompanyName        string             // Trading name.
	BusinessLicense    string             // Official license number, if provided.
	Type               SupplierType       // Supplier category.
	Description        string             // Free-text description of the business.
	Address            string             // Physical address.
	Region             string             // Administrative region.
	District           string             // District within the region.
	OperatingHours     []OperatingHours   // Weekly opening windows.
	DeliveryAreas      []string           // Districts/wards the supplier delivers to.
	VerificationStatus VerificationStatus // Trust state gating marketplace visibility flags.
	Rating             float64            // Derived average review rating, recomputed on review writes.
	ReviewsCount       int                // Number of reviews backing the rating.
	CreatedAt          time.Time          // Timestamp of profile creation.
	UpdatedAt          time.Time          // Timestamp of the last modification.
}

// IsVerified reports whether the profile has been approved.
func (s *Supplier) IsVerified() bool {
	return s.VerificationStatus == VerificationVerified
}
