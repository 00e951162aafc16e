// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDeviceTokenNotFound is returned when a device token is not found.
	ErrDeviceTokenNotFound = errors.New("device token not found")
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser retrieves a user's notifications, newest first, along with
	// the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead stamps a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead stamps all of a user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// DeviceTokenRepository defines the interface for push registration persistence.
type DeviceTokenRepository interface {
	// Upsert inserts a registration or refreshes the existing row for the same token.
	Upsert(ctx context.Context, token *entity.DeviceToken) error

	// FindByUser retrieves all registrations for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteByToken removes a registration by its token value.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUserID removes all registrations for a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
