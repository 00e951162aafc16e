package handler

import (
	"log/slog"
	"net/http"

	"adinas/internal/delivery/http/response"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for file upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload handles a multipart file upload and returns the stored file's URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file in multipart form")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unable to read uploaded file")
	}
	defer file.Close()

	output, err := h.uc.Upload(c.Request().Context(), actorFrom(c), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		Kind:        c.FormValue("kind"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded successfully")
}

// Delete removes a previously uploaded file identified by its storage key.
func (h *UploadHandler) Delete(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing key query parameter")
	}

	if err := h.uc.Remove(c.Request().Context(), actorFrom(c), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File deleted"}, "File deleted successfully")
}
