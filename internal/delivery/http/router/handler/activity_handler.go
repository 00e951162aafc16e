package handler

import (
	"log/slog"
	"net/http"

	"adinas/internal/delivery/http/response"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for the admin audit log handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the admin audit log listing request.
func (h *ActivityHandler) List(c echo.Context) error {
	input := &usecase.ListActivityInput{
		ActorID:      queryUUID(c, "actor_id"),
		Action:       c.QueryParam("action"),
		ResourceType: c.QueryParam("resource_type"),
		ResourceID:   queryUUID(c, "resource_id"),
		Page:         queryInt(c, "page"),
		PerPage:      queryInt(c, "per_page"),
	}

	output, err := h.uc.List(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Logs,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Activity log retrieved successfully")
}
