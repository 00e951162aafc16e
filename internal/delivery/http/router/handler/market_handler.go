package handler

import (
	"log/slog"
	"net/http"
	"time"

	"adinas/internal/delivery/http/response"
	"adinas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler holds dependencies for market price and weather handlers.
type MarketHandler struct {
	uc     usecase.MarketUsecase
	logger *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		uc:     uc,
		logger: logger,
	}
}

type reportPriceRequest struct {
	CropType   string    `json:"crop_type" validate:"required,max=100"`
	MarketName string    `json:"market_name" validate:"required,max=255"`
	Region     string    `json:"region" validate:"required,max=100"`
	Price      float64   `json:"price" validate:"required,gt=0"`
	Unit       string    `json:"unit" validate:"required,max=50"`
	PriceDate  time.Time `json:"price_date" validate:"required"`
}

// ReportPrice handles the commodity price report request.
func (h *MarketHandler) ReportPrice(c echo.Context) error {
	var req reportPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	price, err := h.uc.ReportPrice(c.Request().Context(), actorFrom(c), &usecase.ReportPriceInput{
		CropType:   req.CropType,
		MarketName: req.MarketName,
		Region:     req.Region,
		Price:      req.Price,
		Unit:       req.Unit,
		PriceDate:  req.PriceDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, price, "Price reported successfully")
}

// ListPrices handles the public market price listing request.
func (h *MarketHandler) ListPrices(c echo.Context) error {
	input := &usecase.ListPricesInput{
		CropType:   c.QueryParam("crop_type"),
		MarketName: c.QueryParam("market_name"),
		Region:     c.QueryParam("region"),
		From:       queryDate(c, "from"),
		To:         queryDate(c, "to"),
		Page:       queryInt(c, "page"),
		PerPage:    queryInt(c, "per_page"),
	}

	output, err := h.uc.ListPrices(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.ListData{
		Items:   output.Prices,
		Total:   output.Total,
		Page:    input.Page,
		PerPage: input.PerPage,
	}, "Market prices retrieved successfully")
}

// GetWeather handles the public regional weather request.
func (h *MarketHandler) GetWeather(c echo.Context) error {
	region := c.QueryParam("region")
	if region == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Region is required")
	}

	forecasts, err := h.uc.GetWeather(c.Request().Context(), region, queryInt(c, "days"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, forecasts, "Weather retrieved successfully")
}

type upsertWeatherRequest struct {
	Region       string    `json:"region" validate:"required,max=100"`
	District     string    `json:"district" validate:"omitempty,max=100"`
	TemperatureC float64   `json:"temperature_c"`
	HumidityPct  float64   `json:"humidity_pct" validate:"gte=0,lte=100"`
	RainfallMM   float64   `json:"rainfall_mm" validate:"gte=0"`
	WindSpeedKPH float64   `json:"wind_speed_kph" validate:"gte=0"`
	Condition    string    `json:"condition" validate:"omitempty,max=100"`
	Advisory     string    `json:"advisory"`
	ForecastDate time.Time `json:"forecast_date" validate:"required"`
}

// UpsertWeather handles the weather snapshot upsert request.
func (h *MarketHandler) UpsertWeather(c echo.Context) error {
	var req upsertWeatherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weather input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	weather, err := h.uc.UpsertWeather(c.Request().Context(), actorFrom(c), &usecase.UpsertWeatherInput{
		Region:       req.Region,
		District:     req.District,
		TemperatureC: req.TemperatureC,
		HumidityPct:  req.HumidityPct,
		RainfallMM:   req.RainfallMM,
		WindSpeedKPH: req.WindSpeedKPH,
		Condition:    req.Condition,
		Advisory:     req.Advisory,
		ForecastDate: req.ForecastDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, weather, "Weather stored successfully")
}
