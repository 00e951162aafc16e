package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus represents the lifecycle state of a consultation request.
type ConsultationStatus string

const (
	// ConsultationStatusPending means no officer has accepted the request yet.
	ConsultationStatusPending ConsultationStatus = "pending"
	// ConsultationStatusAccepted means an extension officer is working the request.
	ConsultationStatusAccepted ConsultationStatus = "accepted"
	// ConsultationStatusCompleted means the officer has answered and closed the request.
	ConsultationStatusCompleted ConsultationStatus = "completed"
	// ConsultationStatusCancelled means the farmer withdrew the request.
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// String returns the string representation of the ConsultationStatus.
func (s ConsultationStatus) String() string {
	return string(s)
}

// IsValid checks if the ConsultationStatus is a valid value.
func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusAccepted,
		ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to the target state.
// Pending requests can be accepted or cancelled; accepted requests can be
// completed or cancelled. Completed and cancelled are terminal.
func (s ConsultationStatus) CanTransitionTo(target ConsultationStatus) bool {
	switch s {
	case ConsultationStatusPending:
		return target == ConsultationStatusAccepted || target == ConsultationStatusCancelled
	case ConsultationStatusAccepted:
		return target == ConsultationStatusCompleted || target == ConsultationStatusCancelled
	default:
		return false
	}
}

// Consultation is a question from a farmer routed to extension officers.
type Consultation struct {
	ID          uuid.UUID          // The unique identifier for the consultation.
	FarmerID    uuid.UUID          // The asking farmer.
	OfficerID   *uuid.UUID         // The accepting extension officer, once assigned.
	Subject     string             // Short summary of the question.
	Question    string             // Full question text.
	Answer      string             // Officer's answer, set on completion.
	CropType    string             // Optional crop the question concerns.
	Category    string             // Topic category, e.g. "pest-control".
	Status      ConsultationStatus // Lifecycle state.
	ImageURLs   []string           // Optional photos attached by the farmer.
	AcceptedAt  *time.Time         // When an officer accepted the request.
	CompletedAt *time.Time         // When the answer was delivered.
	CreatedAt   time.Time          // Timestamp of creation.
	UpdatedAt   time.Time          // Timestamp of the last modification.
}

// IsOpen reports whether the consultation still accepts state changes.
func (c *Consultation) IsOpen() bool {
	return c.Status == ConsultationStatusPending || c.Status == ConsultationStatusAccepted
}
