package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceTrend indicates how a commodity price moved since the previous report.
type PriceTrend string

const (
	PriceTrendUp     PriceTrend = "up"
	PriceTrendDown   PriceTrend = "down"
	PriceTrendStable PriceTrend = "stable"
)

// MarketPrice is a reported commodity price at a named market on a given day.
// Prices are upserted per (crop, market, date) so re-reporting the same day
// replaces the earlier figure instead of duplicating it.
type MarketPrice struct {
	ID         uuid.UUID  // The unique identifier for the price row.
	CropType   string     // Commodity name, e.g. "maize".
	MarketName string     // Market the price was observed at, e.g. "Kariakoo".
	Region     string     // Administrative region of the market.
	Price      float64    // Price per unit in TZS.
	Unit       string     // Pricing unit, e.g. "kg", "bag".
	Trend      PriceTrend // Movement relative to the previous report.
	ReportedBy uuid.UUID  // The extension officer or admin who reported it.
	PriceDate  time.Time  // The day the price applies to.
	CreatedAt  time.Time  // Timestamp of creation.
	UpdatedAt  time.Time  // Timestamp of the last modification.
}

// TrendAgainst derives the trend of this price relative to a previous one.
func (p *MarketPrice) TrendAgainst(previous float64) PriceTrend {
	switch {
	case p.Price > previous:
		return PriceTrendUp
	case p.Price < previous:
		return PriceTrendDown
	default:
		return PriceTrendStable
	}
}
