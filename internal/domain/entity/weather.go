package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherData is a daily weather snapshot for a region, stored for display
// alongside market prices and farming advisories.
type WeatherData struct {
	ID            uuid.UUID // The unique identifier for the snapshot.
	Region        string    // Administrative region, e.g. "Mbeya".
	District      string    // Optional district within the region.
	TemperatureC  float64   // Daytime temperature in Celsius.
	HumidityPct   float64   // Relative humidity percentage.
	RainfallMM    float64   // Expected rainfall in millimetres.
	WindSpeedKPH  float64   // Wind speed in kilometres per hour.
	Condition     string    // Short description, e.g. "partly cloudy".
	Advisory      string    // Optional farming advisory for the conditions.
	ForecastDate  time.Time // The day the forecast applies to.
	CreatedAt     time.Time // Timestamp of creation.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
