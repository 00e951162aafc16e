package model

import (
	"time"

	"github.com/google/uuid"
)

// MarketPriceModel is the GORM-specific struct for the 'market_prices' table.
// The composite unique index backs the upsert key: one row per crop, market
// and day.
type MarketPriceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CropType   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_market_prices_key"`
	MarketName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_market_prices_key"`
	Region     string    `gorm:"type:varchar(100);not null;index"`
	Price      float64   `gorm:"type:decimal(12,2);not null"`
	Unit       string    `gorm:"type:varchar(30);not null"`
	Trend      string    `gorm:"type:varchar(10);not null;default:'stable'"`
	ReportedBy uuid.UUID `gorm:"type:uuid;not null"`
	PriceDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_market_prices_key"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MarketPriceModel) TableName() string {
	return "market_prices"
}

// WeatherDataModel is the GORM-specific struct for the 'weather_data' table.
// One row per region, district and forecast day, replaced on re-ingestion.
type WeatherDataModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Region       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_weather_data_key"`
	District     string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_weather_data_key"`
	TemperatureC float64   `gorm:"type:decimal(5,2);not null"`
	HumidityPct  float64   `gorm:"type:decimal(5,2);not null"`
	RainfallMM   float64   `gorm:"column:rainfall_mm;type:decimal(7,2);not null"`
	WindSpeedKPH float64   `gorm:"column:wind_speed_kph;type:decimal(6,2);not null"`
	Condition    string    `gorm:"type:varchar(100);not null"`
	Advisory     string    `gorm:"type:text"`
	ForecastDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_weather_data_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeatherDataModel) TableName() string {
	return "weather_data"
}
