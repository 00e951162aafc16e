package usecase

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// NotifyInput defines an internal notification dispatch. Persistence is the
// source of truth; push delivery is best effort.
type NotifyInput struct {
	UserID uuid.UUID
	Type   entity.NotificationType
	Title  string
	Body   string
	Data   map[string]string
}

// RegisterDeviceInput defines a push registration for one of the actor's devices.
type RegisterDeviceInput struct {
	Token    string
	Platform string
}

// ListNotificationsInput defines the notification listing parameters.
type ListNotificationsInput struct {
	UnreadOnly bool
	Page       int
	PerPage    int
}

// --- Output DTOs ---

// NotificationListOutput returns a page of notifications with counts.
type NotificationListOutput struct {
	Notifications []*entity.Notification
	Total         int64
	UnreadCount   int64
}

// NotificationUsecase defines the interface for notification business operations.
type NotificationUsecase interface {
	// Notify persists a notification and pushes it to the user's registered
	// devices. Push failures are logged, never surfaced to the caller.
	Notify(ctx context.Context, input *NotifyInput) error

	// List retrieves the actor's notifications, newest first.
	List(ctx context.Context, actor entity.Actor, input *ListNotificationsInput) (*NotificationListOutput, error)

	// MarkRead stamps one of the actor's notifications as read.
	MarkRead(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) error

	// MarkAllRead stamps all of the actor's notifications as read.
	MarkAllRead(ctx context.Context, actor entity.Actor) error

	// RegisterDevice stores a push token for one of the actor's devices.
	RegisterDevice(ctx context.Context, actor entity.Actor, input *RegisterDeviceInput) error

	// UnregisterDevice removes a push token.
	UnregisterDevice(ctx context.Context, actor entity.Actor, token string) error
}
