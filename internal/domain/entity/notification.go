package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationTypeSystem       NotificationType = "system"
	NotificationTypeConsultation NotificationType = "consultation"
	NotificationTypeReview       NotificationType = "review"
	NotificationTypeVerification NotificationType = "verification"
	NotificationTypePrice        NotificationType = "price"
)

// Notification is an in-app message delivered to a single user. Push
// delivery to the user's devices happens alongside persistence but never
// blocks it.
type Notification struct {
	ID        uuid.UUID        // The unique identifier for the notification.
	UserID    uuid.UUID        // The receiving user.
	Type      NotificationType // Classification used for filtering.
	Title     string           // Short headline.
	Body      string           // Message body.
	Data      map[string]string // Optional structured payload for deep links.
	ReadAt    *time.Time       // When the user read it, if at all.
	CreatedAt time.Time        // Timestamp of creation.
}

// IsRead reports whether the user has opened the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead stamps the read time if not already set.
func (n *Notification) MarkRead(now time.Time) {
	if n.ReadAt == nil {
		t := now
		n.ReadAt = &t
	}
}

// DeviceToken is a push-notification registration for one of a user's
// devices. Tokens are unique per device and replaced on re-registration.
type DeviceToken struct {
	ID        uuid.UUID // The unique identifier for the registration.
	UserID    uuid.UUID // The owning user.
	Token     string    // FCM registration token.
	Platform  string    // "android", "ios", or "web".
	CreatedAt time.Time // Timestamp of registration.
	UpdatedAt time.Time // Timestamp of the last refresh.
}
