package impl

import (
	"context"
	"log/slog"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceTokenRepository
	push             service.PushService
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceTokenRepository,
	push service.PushService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		push:             push,
		logger:           logger,
	}
}

// Notify persists a notification and pushes it to the user's devices.
// The stored row is the source of truth; push delivery is best effort.
func (srv *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: input.UserID,
		Type:   input.Type,
		Title:  input.Title,
		Body:   input.Body,
		Data:   input.Data,
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	srv.pushToDevices(ctx, input, logger)

	return nil
}

// pushToDevices fans the notification out to the user's registered devices.
func (srv *notificationService) pushToDevices(ctx context.Context, input *usecase.NotifyInput, logger *slog.Logger) {
	if srv.push == nil {
		return
	}

	devices, err := srv.deviceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		logger.Warn("Failed to load device tokens for push", "userID", input.UserID, "error", err)

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	_, failed, invalid, err := srv.push.SendBatchNotification(ctx, tokens, input.Title, input.Body, input.Data)
	if err != nil {
		logger.Warn("Push delivery failed", "userID", input.UserID, "error", err)

		return
	}
	if failed > 0 {
		logger.Debug("Some push deliveries failed", "userID", input.UserID, "failed", failed)
	}

	// Invalid tokens are dead registrations; drop them.
	for _, token := range invalid {
		if err := srv.deviceRepo.DeleteByToken(ctx, token); err != nil {
			logger.Warn("Failed to prune invalid device token", "error", err)
		}
	}
}

// List retrieves the actor's notifications, newest first.
func (srv *notificationService) List(ctx context.Context, actor entity.Actor, input *usecase.ListNotificationsInput) (*usecase.NotificationListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 || perPage > usecase.MaxPageSize {
		perPage = usecase.DefaultPageSize
	}

	notifications, total, err := srv.notificationRepo.ListByUser(ctx, actor.ID, input.UnreadOnly, perPage, (page-1)*perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationListOutput{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead stamps one of the actor's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("notification lookup failed")
		}

		return errors.Wrap(err, "failed to find notification")
	}
	if !actor.CanMutate(notification.UserID) {
		return domainerrors.ErrNotificationNotFound.WrapMessage("notification lookup failed")
	}

	return errors.Wrap(srv.notificationRepo.MarkRead(ctx, notificationID), "failed to mark notification read")
}

// MarkAllRead stamps all of the actor's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, actor entity.Actor) error {
	return errors.Wrap(srv.notificationRepo.MarkAllRead(ctx, actor.ID), "failed to mark notifications read")
}

// RegisterDevice stores a push token for one of the actor's devices.
func (srv *notificationService) RegisterDevice(ctx context.Context, actor entity.Actor, input *usecase.RegisterDeviceInput) error {
	if input.Token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device token is required")
	}

	token := &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   actor.ID,
		Token:    input.Token,
		Platform: input.Platform,
	}

	return errors.Wrap(srv.deviceRepo.Upsert(ctx, token), "failed to register device")
}

// UnregisterDevice removes a push token.
func (srv *notificationService) UnregisterDevice(ctx context.Context, _ entity.Actor, token string) error {
	return errors.Wrap(srv.deviceRepo.DeleteByToken(ctx, token), "failed to unregister device")
}
