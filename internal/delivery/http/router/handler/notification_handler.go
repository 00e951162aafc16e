package handler

import (
	"log/slog"
	"net/http"

	"adinas/internal/delivery/http/response"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request for the actor's notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	input := &usecase.ListNotificationsInput{
		UnreadOnly: queryBool(c, "unread_only"),
		Page:       queryInt(c, "page"),
		PerPage:    queryInt(c, "per_page"),
	}

	output, err := h.uc.List(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":        output.Notifications,
		"total":        output.Total,
		"unread_count": output.UnreadCount,
		"page":         input.Page,
		"per_page":     input.PerPage,
	}, "Notifications retrieved successfully")
}

// MarkRead handles the single notification read request.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification marked as read")
}

// MarkAllRead handles the bulk notification read request.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context(), actorFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All notifications marked as read"}, "Notifications marked as read")
}

type registerDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// RegisterDevice handles the push token registration request.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RegisterDevice(c.Request().Context(), actorFrom(c), &usecase.RegisterDeviceInput{
		Token:    req.Token,
		Platform: req.Platform,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Device registered"}, "Device registered successfully")
}

type unregisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// UnregisterDevice handles the push token removal request.
func (h *NotificationHandler) UnregisterDevice(c echo.Context) error {
	var req unregisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UnregisterDevice(c.Request().Context(), actorFrom(c), req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device unregistered"}, "Device unregistered successfully")
}
