package handler

import (
	"log/slog"
	"net/http"
	"time"

	"adinas/internal/delivery/http/response"
	"adinas/internal/domain/entity"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FarmRecordHandler holds dependencies for farm journal handlers.
type FarmRecordHandler struct {
	uc     usecase.FarmRecordUsecase
	logger *slog.Logger
}

// NewFarmRecordHandler is the constructor for FarmRecordHandler, injected by Fx.
func NewFarmRecordHandler(uc usecase.FarmRecordUsecase, logger *slog.Logger) *FarmRecordHandler {
	return &FarmRecordHandler{
		uc:     uc,
		logger: logger,
	}
}

type createFarmRecordRequest struct {
	Type        string    `json:"type" validate:"required,oneof=planting fertilizing spraying harvest expense sale"`
	CropType    string    `json:"crop_type" validate:"required,max=100"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity" validate:"gte=0"`
	Unit        string    `json:"unit" validate:"omitempty,max=50"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	RecordDate  time.Time `json:"record_date" validate:"required"`
}

// Create handles the farm record creation request.
func (h *FarmRecordHandler) Create(c echo.Context) error {
	var req createFarmRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm record input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.Create(c.Request().Context(), actorFrom(c), &usecase.CreateFarmRecordInput{
		Type:        entity.FarmRecordType(req.Type),
		CropType:    req.CropType,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Amount:      req.Amount,
		RecordDate:  req.RecordDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Farm record created successfully")
}

// GetByID handles the farm record lookup request.
func (h *FarmRecordHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.uc.GetByID(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Farm record retrieved successfully")
}

// List handles the request for the actor's farm records.
func (h *FarmRecordHandler) List(c echo.Context) error {
	input := &usecase.ListFarmRecordsInput{
		Type:     entity.FarmRecordType(c.QueryParam("type")),
		CropType: c.QueryParam("crop_type"),
		From:     queryDate(c, "from"),
		To:       queryDate(c, "to"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
	}

	output, err := h.uc.List(c.Request().Context(), actorFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Records,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Farm records retrieved successfully")
}

// Summary handles the expense and sale aggregation request.
func (h *FarmRecordHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context(), actorFrom(c), queryDate(c, "from"), queryDate(c, "to"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Farm summary retrieved successfully")
}

type updateFarmRecordRequest struct {
	Type        *string    `json:"type" validate:"omitempty,oneof=planting fertilizing spraying harvest expense sale"`
	CropType    *string    `json:"crop_type" validate:"omitempty,max=100"`
	Description *string    `json:"description"`
	Quantity    *float64   `json:"quantity" validate:"omitempty,gte=0"`
	Unit        *string    `json:"unit" validate:"omitempty,max=50"`
	Amount      *float64   `json:"amount" validate:"omitempty,gte=0"`
	RecordDate  *time.Time `json:"record_date"`
}

func (r *updateFarmRecordRequest) toInput() *usecase.UpdateFarmRecordInput {
	input := &usecase.UpdateFarmRecordInput{
		CropType:    r.CropType,
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Amount:      r.Amount,
		RecordDate:  r.RecordDate,
	}
	if r.Type != nil {
		recordType := entity.FarmRecordType(*r.Type)
		input.Type = &recordType
	}

	return input
}

// Update handles the farm record update request.
func (h *FarmRecordHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateFarmRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm record input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.Update(c.Request().Context(), actorFrom(c), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Farm record updated successfully")
}

// Delete handles the farm record removal request.
func (h *FarmRecordHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Farm record deleted"}, "Farm record deleted successfully")
}
