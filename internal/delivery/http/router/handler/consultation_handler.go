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

// ConsultationHandler holds dependencies for expert consultation handlers.
type ConsultationHandler struct {
	uc     usecase.ConsultationUsecase
	logger *slog.Logger
}

// NewConsultationHandler is the constructor for ConsultationHandler, injected by Fx.
func NewConsultationHandler(uc usecase.ConsultationUsecase, logger *slog.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		uc:     uc,
		logger: logger,
	}
}

type askConsultationRequest struct {
	Subject   string   `json:"subject" validate:"required,max=255"`
	Question  string   `json:"question" validate:"required"`
	CropType  string   `json:"crop_type" validate:"omitempty,max=100"`
	Category  string   `json:"category" validate:"omitempty,max=100"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
}

// Ask handles the consultation opening request.
func (h *ConsultationHandler) Ask(c echo.Context) error {
	var req askConsultationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consultation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	consultation, err := h.uc.Ask(c.Request().Context(), actorFrom(c), &usecase.AskConsultationInput{
		Subject:   req.Subject,
		Question:  req.Question,
		CropType:  req.CropType,
		Category:  req.Category,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, consultation, "Consultation created successfully")
}

// GetByID handles the consultation lookup request.
func (h *ConsultationHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	consultation, err := h.uc.GetByID(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "Consultation retrieved successfully")
}

func listConsultationsInput(c echo.Context) *usecase.ListConsultationsInput {
	return &usecase.ListConsultationsInput{
		Status:   entity.ConsultationStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
	}
}

// ListMine handles the request for the actor's own consultations.
func (h *ConsultationHandler) ListMine(c echo.Context) error {
	input := listConsultationsInput(c)

	output, err := h.uc.ListMine(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Consultations,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Consultations retrieved successfully")
}

// ListPending handles the officer request for unassigned consultations.
func (h *ConsultationHandler) ListPending(c echo.Context) error {
	input := listConsultationsInput(c)

	output, err := h.uc.ListPending(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Consultations,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Pending consultations retrieved successfully")
}

// Accept handles the officer assignment request.
func (h *ConsultationHandler) Accept(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	consultation, err := h.uc.Accept(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "Consultation accepted successfully")
}

type completeConsultationRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// Complete handles the answer submission request.
func (h *ConsultationHandler) Complete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req completeConsultationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	consultation, err := h.uc.Complete(c.Request().Context(), actorFrom(c), &usecase.CompleteConsultationInput{
		ConsultationID: id,
		Answer:         req.Answer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "Consultation completed successfully")
}

// Cancel handles the consultation withdrawal request.
func (h *ConsultationHandler) Cancel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	consultation, err := h.uc.Cancel(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "Consultation cancelled successfully")
}
