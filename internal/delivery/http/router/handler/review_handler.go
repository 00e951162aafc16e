package handler

import (
	"log/slog"
	"net/http"

	"adinas/internal/delivery/http/response"
	"adinas/internal/domain/entity"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReviewRequest struct {
	ReviewableType string    `json:"reviewable_type" validate:"required,oneof=product supplier content consultation"`
	ReviewableID   uuid.UUID `json:"reviewable_id" validate:"required"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Comment        string    `json:"comment" validate:"max=2000"`
}

// Create handles the review creation request.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.Create(c.Request().Context(), actorFrom(c), &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableType(req.ReviewableType),
		ReviewableID:   req.ReviewableID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// List handles the public review listing request for a resource.
func (h *ReviewHandler) List(c echo.Context) error {
	input := &usecase.ListReviewsInput{
		ReviewableType: entity.ReviewableType(c.QueryParam("reviewable_type")),
		ReviewableID:   queryUUID(c, "reviewable_id"),
		Page:           queryInt(c, "page"),
		PerPage:        queryInt(c, "per_page"),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":          output.Reviews,
		"total":          output.Total,
		"average_rating": output.AverageRating,
		"page":           input.Page,
		"per_page":       input.PerPage,
	}, "Reviews retrieved successfully")
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// Update handles the review update request.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.Update(c.Request().Context(), actorFrom(c), id, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete handles the review removal request.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}
