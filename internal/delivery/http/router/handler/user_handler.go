package handler

import (
	"log/slog"
	"net/http"

	"adinas/internal/delivery/http/response"
	"adinas/internal/domain/entity"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user profile and admin user handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile handles the request for the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), actorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

type updateProfileRequest struct {
	FirstName         *string `json:"first_name" validate:"omitempty,max=100"`
	LastName          *string `json:"last_name" validate:"omitempty,max=100"`
	Phone             *string `json:"phone" validate:"omitempty,max=20"`
	Region            *string `json:"region"`
	District          *string `json:"district"`
	Ward              *string `json:"ward"`
	PreferredLanguage *string `json:"preferred_language"`
	ProfileImageURL   *string `json:"profile_image_url" validate:"omitempty,url"`
}

func (r *updateProfileRequest) toInput() *usecase.UpdateProfileInput {
	input := &usecase.UpdateProfileInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Region:          r.Region,
		District:        r.District,
		Ward:            r.Ward,
		ProfileImageURL: r.ProfileImageURL,
	}
	if r.PreferredLanguage != nil {
		lang := entity.Language(*r.PreferredLanguage)
		input.PreferredLanguage = &lang
	}

	return input
}

// UpdateProfile handles partial updates to the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := actorFrom(c)
	user, err := h.uc.UpdateProfile(c.Request().Context(), actor, actor.ID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// DeleteAccount handles the current user's account deletion request.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	actor := actorFrom(c)
	if err := h.uc.DeleteAccount(c.Request().Context(), actor, actor.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}

// ListUsers handles the admin user listing request.
func (h *UserHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Role:    entity.Role(c.QueryParam("role")),
		Status:  entity.UserStatus(c.QueryParam("status")),
		Region:  c.QueryParam("region"),
		Search:  c.QueryParam("search"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}

	output, err := h.uc.ListUsers(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Users,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Users retrieved successfully")
}

// GetUser handles the admin single-user lookup request.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// DeleteUser handles the admin request to remove another user's account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

// UpdateUserStatus handles the admin account status change request.
func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), actorFrom(c), &usecase.UpdateUserStatusInput{
		UserID: id,
		Status: entity.UserStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User status updated successfully")
}
