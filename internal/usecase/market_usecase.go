package usecase

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
)

// --- Input DTOs ---

// ReportPriceInput defines a commodity price report.
type ReportPriceInput struct {
	CropType   string
	MarketName string
	Region     string
	Price      float64
	Unit       string
	PriceDate  time.Time
}

// ListPricesInput defines the market price listing parameters.
type ListPricesInput struct {
	CropType   string
	MarketName string
	Region     string
	From       time.Time
	To         time.Time
	Page       int
	PerPage    int
}

// UpsertWeatherInput defines a weather snapshot for a region.
type UpsertWeatherInput struct {
	Region       string
	District     string
	TemperatureC float64
	HumidityPct  float64
	RainfallMM   float64
	WindSpeedKPH float64
	Condition    string
	Advisory     string
	ForecastDate time.Time
}

// --- Output DTOs ---

// PriceListOutput returns a page of market prices with the total count.
type PriceListOutput struct {
	Prices []*entity.MarketPrice
	Total  int64
}

// MarketUsecase defines the interface for market data business operations.
type MarketUsecase interface {
	// ReportPrice upserts a commodity price for a market and day, deriving
	// the trend from the previous report. Restricted to extension officers
	// and admins.
	ReportPrice(ctx context.Context, actor entity.Actor, input *ReportPriceInput) (*entity.MarketPrice, error)

	// ListPrices retrieves market prices matching the filter. Public.
	ListPrices(ctx context.Context, input *ListPricesInput) (*PriceListOutput, error)

	// GetWeather retrieves upcoming weather snapshots for a region. Public.
	GetWeather(ctx context.Context, region string, days int) ([]*entity.WeatherData, error)

	// UpsertWeather stores a weather snapshot. Restricted to extension
	// officers and admins.
	UpsertWeather(ctx context.Context, actor entity.Actor, input *UpsertWeatherInput) (*entity.WeatherData, error)
}

// Filter converts listing input into a repository filter.
func (in *ListPricesInput) Filter() repository.MarketPriceListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.MarketPriceListFilter{
		CropType:   in.CropType,
		MarketName: in.MarketName,
		Region:     in.Region,
		From:       in.From,
		To:         in.To,
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
	}
}
