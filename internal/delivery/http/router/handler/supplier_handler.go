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

// SupplierHandler holds dependencies for supplier profile handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSupplierRequest struct {
	CompanyName     string                  `json:"company_name" validate:"required,max=255"`
	BusinessLicense string                  `json:"business_license" validate:"required,max=100"`
	Type            string                  `json:"type" validate:"required"`
	Description     string                  `json:"description"`
	Address         string                  `json:"address"`
	Region          string                  `json:"region" validate:"required"`
	District        string                  `json:"district"`
	OperatingHours  []entity.OperatingHours `json:"operating_hours"`
	DeliveryAreas   []string                `json:"delivery_areas"`
}

// CreateProfile handles the supplier profile creation request.
func (h *SupplierHandler) CreateProfile(c echo.Context) error {
	var req createSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplier, err := h.uc.CreateProfile(c.Request().Context(), actorFrom(c), &usecase.CreateSupplierInput{
		CompanyName:     req.CompanyName,
		BusinessLicense: req.BusinessLicense,
		Type:            entity.SupplierType(req.Type),
		Description:     req.Description,
		Address:         req.Address,
		Region:          req.Region,
		District:        req.District,
		OperatingHours:  req.OperatingHours,
		DeliveryAreas:   req.DeliveryAreas,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, supplier, "Supplier profile created successfully")
}

// GetByID handles the public supplier lookup request.
func (h *SupplierHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier retrieved successfully")
}

// GetMine handles the request for the current user's supplier profile.
func (h *SupplierHandler) GetMine(c echo.Context) error {
	supplier, err := h.uc.GetMine(c.Request().Context(), actorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier profile retrieved successfully")
}

// List handles the public supplier listing request. Anonymous callers only
// see verified suppliers; admins may filter by verification status.
func (h *SupplierHandler) List(c echo.Context) error {
	input := &usecase.ListSuppliersInput{
		Type:    entity.SupplierType(c.QueryParam("type")),
		Region:  c.QueryParam("region"),
		Search:  c.QueryParam("search"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}

	if actor := actorFrom(c); actor.IsAdmin() {
		input.VerificationStatus = entity.VerificationStatus(c.QueryParam("verification_status"))
	} else {
		input.VerificationStatus = entity.VerificationVerified
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Suppliers,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Suppliers retrieved successfully")
}

type updateSupplierRequest struct {
	CompanyName    *string                 `json:"company_name" validate:"omitempty,max=255"`
	Description    *string                 `json:"description"`
	Address        *string                 `json:"address"`
	Region         *string                 `json:"region"`
	District       *string                 `json:"district"`
	OperatingHours []entity.OperatingHours `json:"operating_hours"`
	DeliveryAreas  []string                `json:"delivery_areas"`
}

// Update handles the supplier profile update request.
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplier, err := h.uc.Update(c.Request().Context(), actorFrom(c), id, &usecase.UpdateSupplierInput{
		CompanyName:    req.CompanyName,
		Description:    req.Description,
		Address:        req.Address,
		Region:         req.Region,
		District:       req.District,
		OperatingHours: req.OperatingHours,
		DeliveryAreas:  req.DeliveryAreas,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier profile updated successfully")
}

// Verify handles the admin supplier verification request.
func (h *SupplierHandler) Verify(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.uc.Verify(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier verified successfully")
}

type rejectSupplierRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Reject handles the admin supplier rejection request. A reason is mandatory.
func (h *SupplierHandler) Reject(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req rejectSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplier, err := h.uc.Reject(c.Request().Context(), actorFrom(c), &usecase.RejectSupplierInput{
		SupplierID: id,
		Reason:     req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier rejected")
}

// Types handles the public supplier type listing request.
func (h *SupplierHandler) Types(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.SupplierTypeLabels, "Supplier types retrieved successfully")
}
