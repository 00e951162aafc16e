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

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name              string     `json:"name" validate:"required,max=255"`
	Description       string     `json:"description"`
	Category          string     `json:"category" validate:"required,max=100"`
	Subcategory       string     `json:"subcategory" validate:"omitempty,max=100"`
	Price             float64    `json:"price" validate:"required,gt=0"`
	Unit              string     `json:"unit" validate:"required,max=50"`
	StockQuantity     int        `json:"stock_quantity" validate:"gte=0"`
	MinimumOrder      int        `json:"minimum_order" validate:"omitempty,gte=1"`
	ImageURLs         []string   `json:"image_urls" validate:"omitempty,dive,url"`
	Tags              []string   `json:"tags"`
	Brand             string     `json:"brand"`
	OriginCountry     string     `json:"origin_country"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	ManufacturingDate *time.Time `json:"manufacturing_date"`
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), actorFrom(c), &usecase.CreateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Price:             req.Price,
		Unit:              req.Unit,
		StockQuantity:     req.StockQuantity,
		MinimumOrder:      req.MinimumOrder,
		ImageURLs:         req.ImageURLs,
		Tags:              req.Tags,
		Brand:             req.Brand,
		OriginCountry:     req.OriginCountry,
		ExpiryDate:        req.ExpiryDate,
		ManufacturingDate: req.ManufacturingDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetByID handles the public product lookup request.
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles the public product listing request.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		SupplierID:  queryUUID(c, "supplier_id"),
		Category:    c.QueryParam("category"),
		Subcategory: c.QueryParam("subcategory"),
		Status:      entity.ProductStatus(c.QueryParam("status")),
		Search:      c.QueryParam("search"),
		MinPrice:    queryFloat(c, "min_price"),
		MaxPrice:    queryFloat(c, "max_price"),
		InStockOnly: queryBool(c, "in_stock"),
		Page:        queryInt(c, "page"),
		PerPage:     queryInt(c, "per_page"),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Products,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Products retrieved successfully")
}

type updateProductRequest struct {
	Name              *string    `json:"name" validate:"omitempty,max=255"`
	Description       *string    `json:"description"`
	Category          *string    `json:"category" validate:"omitempty,max=100"`
	Subcategory       *string    `json:"subcategory" validate:"omitempty,max=100"`
	Price             *float64   `json:"price" validate:"omitempty,gt=0"`
	Unit              *string    `json:"unit" validate:"omitempty,max=50"`
	MinimumOrder      *int       `json:"minimum_order" validate:"omitempty,gte=1"`
	Status            *string    `json:"status" validate:"omitempty,oneof=active inactive out_of_stock"`
	ImageURLs         []string   `json:"image_urls" validate:"omitempty,dive,url"`
	Tags              []string   `json:"tags"`
	Brand             *string    `json:"brand"`
	OriginCountry     *string    `json:"origin_country"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	ManufacturingDate *time.Time `json:"manufacturing_date"`
}

func (r *updateProductRequest) toInput() *usecase.UpdateProductInput {
	input := &usecase.UpdateProductInput{
		Name:              r.Name,
		Description:       r.Description,
		Category:          r.Category,
		Subcategory:       r.Subcategory,
		Price:             r.Price,
		Unit:              r.Unit,
		MinimumOrder:      r.MinimumOrder,
		ImageURLs:         r.ImageURLs,
		Tags:              r.Tags,
		Brand:             r.Brand,
		OriginCountry:     r.OriginCountry,
		ExpiryDate:        r.ExpiryDate,
		ManufacturingDate: r.ManufacturingDate,
	}
	if r.Status != nil {
		status := entity.ProductStatus(*r.Status)
		input.Status = &status
	}

	return input
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), actorFrom(c), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles the product removal request.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

type adjustStockRequest struct {
	Action   string `json:"action" validate:"required,oneof=add subtract set"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// AdjustStock handles the stock adjustment request.
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AdjustStock(c.Request().Context(), actorFrom(c), &usecase.AdjustStockInput{
		ProductID: id,
		Action:    entity.StockAction(req.Action),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Stock adjusted successfully")
}

// Categories handles the public product category listing request.
func (h *ProductHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ProductCategories, "Product categories retrieved successfully")
}
