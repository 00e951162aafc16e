// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"adinas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for market data persistence.
var (
	// ErrMarketPriceNotFound is returned when a market price is not found.
	ErrMarketPriceNotFound = errors.New("market price not found")
	// ErrWeatherNotFound is returned when no weather data exists for a region.
	ErrWeatherNotFound = errors.New("weather data not found")
)

// MarketPriceListFilter narrows market price listings.
type MarketPriceListFilter struct {
	CropType   string    // Zero value matches all crops.
	MarketName string    // Zero value matches all markets.
	Region     string    // Zero value matches all regions.
	From       time.Time // Zero value means no lower bound on price date.
	To         time.Time // Zero value means no upper bound on price date.
	Limit      int
	Offset     int
}

// MarketPriceRepository defines the interface for commodity price persistence.
type MarketPriceRepository interface {
	// Upsert inserts a price or replaces the existing row for the same
	// (crop, market, date) key.
	Upsert(ctx context.Context, price *entity.MarketPrice) error

	// FindByID retrieves a market price by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketPrice, error)

	// FindLatest retrieves the most recent price for a crop at a market
	// before the given date.
	FindLatest(ctx context.Context, cropType, marketName string, before time.Time) (*entity.MarketPrice, error)

	// List retrieves market prices matching the filter along with the total count.
	List(ctx context.Context, filter MarketPriceListFilter) ([]*entity.MarketPrice, int64, error)
}

// WeatherRepository defines the interface for weather snapshot persistence.
type WeatherRepository interface {
	// Upsert inserts a snapshot or replaces the existing row for the same
	// (region, district, date) key.
	Upsert(ctx context.Context, data *entity.WeatherData) error

	// FindByRegion retrieves the snapshots for a region on or after the date,
	// soonest first.
	FindByRegion(ctx context.Context, region string, from time.Time, limit int) ([]*entity.WeatherData, error)
}
