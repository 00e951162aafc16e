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

// ContentHandler holds dependencies for educational content handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createContentRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Body          string   `json:"body" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=article guide tip news video infographic"`
	Language      string   `json:"language" validate:"omitempty,oneof=en sw"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	CoverImageURL string   `json:"cover_image_url" validate:"omitempty,url"`
	VideoURL      string   `json:"video_url" validate:"omitempty,url"`
}

// Create handles the content drafting request.
func (h *ContentHandler) Create(c echo.Context) error {
	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	content, err := h.uc.Create(c.Request().Context(), actorFrom(c), &usecase.CreateContentInput{
		Title:         req.Title,
		Body:          req.Body,
		Type:          entity.ContentType(req.Type),
		Language:      entity.Language(req.Language),
		Category:      req.Category,
		Tags:          req.Tags,
		CoverImageURL: req.CoverImageURL,
		VideoURL:      req.VideoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, content, "Content created successfully")
}

// GetBySlug handles the public content lookup by slug.
func (h *ContentHandler) GetBySlug(c echo.Context) error {
	content, err := h.uc.GetBySlug(c.Request().Context(), actorFrom(c), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content retrieved successfully")
}

// GetByID handles the content lookup by ID.
func (h *ContentHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	content, err := h.uc.GetByID(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content retrieved successfully")
}

// List handles the public content listing request. Anonymous callers only
// see published pieces; authors and admins may browse drafts.
func (h *ContentHandler) List(c echo.Context) error {
	input := &usecase.ListContentInput{
		AuthorID: queryUUID(c, "author_id"),
		Type:     entity.ContentType(c.QueryParam("type")),
		Language: entity.Language(c.QueryParam("language")),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
	}

	actor := actorFrom(c)
	if actor.IsAdmin() || (actor.ID != uuid.Nil && actor.ID == input.AuthorID) {
		input.Status = entity.ContentStatus(c.QueryParam("status"))
	} else {
		input.PublishedOnly = true
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Items,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Content retrieved successfully")
}

type updateContentRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=255"`
	Body          *string  `json:"body"`
	Type          *string  `json:"type" validate:"omitempty,oneof=article guide tip news video infographic"`
	Language      *string  `json:"language" validate:"omitempty,oneof=en sw"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	CoverImageURL *string  `json:"cover_image_url" validate:"omitempty,url"`
	VideoURL      *string  `json:"video_url" validate:"omitempty,url"`
}

func (r *updateContentRequest) toInput() *usecase.UpdateContentInput {
	input := &usecase.UpdateContentInput{
		Title:         r.Title,
		Body:          r.Body,
		Category:      r.Category,
		Tags:          r.Tags,
		CoverImageURL: r.CoverImageURL,
		VideoURL:      r.VideoURL,
	}
	if r.Type != nil {
		contentType := entity.ContentType(*r.Type)
		input.Type = &contentType
	}
	if r.Language != nil {
		lang := entity.Language(*r.Language)
		input.Language = &lang
	}

	return input
}

// Update handles the content update request.
func (h *ContentHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	content, err := h.uc.Update(c.Request().Context(), actorFrom(c), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content updated successfully")
}

// Publish handles the content publication request.
func (h *ContentHandler) Publish(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	content, err := h.uc.Publish(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content published successfully")
}

// Archive handles the content withdrawal request.
func (h *ContentHandler) Archive(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	content, err := h.uc.Archive(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content archived successfully")
}

// Delete handles the content removal request.
func (h *ContentHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Content deleted"}, "Content deleted successfully")
}

// Categories handles the public content category listing request.
func (h *ContentHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ContentCategories, "Content categories retrieved successfully")
}
