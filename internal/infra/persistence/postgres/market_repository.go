package postgres

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// marketPriceRepository implements the repository.MarketPriceRepository interface.
type marketPriceRepository struct {
	db *gorm.DB
}

// NewMarketPriceRepository is the constructor for marketPriceRepository.
func NewMarketPriceRepository(db *gorm.DB) repository.MarketPriceRepository {
	return &marketPriceRepository{
		db: db,
	}
}

// Upsert inserts a price or replaces the existing row for the same
// (crop, market, date) key.
func (repo *marketPriceRepository) Upsert(ctx context.Context, price *entity.MarketPrice) error {
	priceM := fromMarketPriceDomain(price)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "crop_type"}, {Name: "market_name"}, {Name: "price_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"region", "price", "unit", "trend", "reported_by", "updated_at",
			}),
		}).
		Create(priceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert market price")
	}

	// Update the entity with generated values
	price.ID = priceM.ID
	price.CreatedAt = priceM.CreatedAt
	price.UpdatedAt = priceM.UpdatedAt

	return nil
}

// FindByID retrieves a market price by its unique ID.
func (repo *marketPriceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketPrice, error) {
	var priceM model.MarketPriceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&priceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMarketPriceNotFound
		}

		return nil, errors.Wrap(err, "failed to find market price by ID")
	}

	return toMarketPriceDomain(&priceM), nil
}

// FindLatest retrieves the most recent price for a crop at a market before the given date.
func (repo *marketPriceRepository) FindLatest(ctx context.Context, cropType, marketName string, before time.Time) (*entity.MarketPrice, error) {
	var priceM model.MarketPriceModel

	if err := repo.db.WithContext(ctx).
		Where("crop_type = ? AND market_name = ? AND price_date < ?", cropType, marketName, before).
		Order("price_date DESC").
		First(&priceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMarketPriceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest market price")
	}

	return toMarketPriceDomain(&priceM), nil
}

// List retrieves market prices matching the filter along with the total count.
func (repo *marketPriceRepository) List(ctx context.Context, filter repository.MarketPriceListFilter) ([]*entity.MarketPrice, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MarketPriceModel{})

	if filter.CropType != "" {
		query = query.Where("crop_type = ?", filter.CropType)
	}
	if filter.MarketName != "" {
		query = query.Where("market_name = ?", filter.MarketName)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if !filter.From.IsZero() {
		query = query.Where("price_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("price_date <= ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count market prices")
	}

	var priceModels []*model.MarketPriceModel
	if err := query.
		Order("price_date DESC, crop_type ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&priceModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list market prices")
	}

	prices := make([]*entity.MarketPrice, 0, len(priceModels))
	for _, priceM := range priceModels {
		prices = append(prices, toMarketPriceDomain(priceM))
	}

	return prices, total, nil
}

// weatherRepository implements the repository.WeatherRepository interface.
type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository is the constructor for weatherRepository.
func NewWeatherRepository(db *gorm.DB) repository.WeatherRepository {
	return &weatherRepository{
		db: db,
	}
}

// Upsert inserts a snapshot or replaces the existing row for the same
// (region, district, date) key.
func (repo *weatherRepository) Upsert(ctx context.Context, data *entity.WeatherData) error {
	weatherM := fromWeatherDomain(data)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "region"}, {Name: "district"}, {Name: "forecast_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"temperature_c", "humidity_pct", "rainfall_mm", "wind_speed_kph",
				"condition", "advisory", "updated_at",
			}),
		}).
		Create(weatherM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert weather data")
	}

	// Update the entity with generated values
	data.ID = weatherM.ID
	data.CreatedAt = weatherM.CreatedAt
	data.UpdatedAt = weatherM.UpdatedAt

	return nil
}

// FindByRegion retrieves the snapshots for a region on or after the date, soonest first.
func (repo *weatherRepository) FindByRegion(ctx context.Context, region string, from time.Time, limit int) ([]*entity.WeatherData, error) {
	var weatherModels []*model.WeatherDataModel

	if err := repo.db.WithContext(ctx).
		Where("region = ? AND forecast_date >= ?", region, from).
		Order("forecast_date ASC").
		Limit(limit).
		Find(&weatherModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find weather data by region")
	}

	snapshots := make([]*entity.WeatherData, 0, len(weatherModels))
	for _, weatherM := range weatherModels {
		snapshots = append(snapshots, toWeatherDomain(weatherM))
	}

	return snapshots, nil
}

// toMarketPriceDomain converts a GORM MarketPriceModel to a domain MarketPrice entity.
func toMarketPriceDomain(data *model.MarketPriceModel) *entity.MarketPrice {
	if data == nil {
		return nil
	}

	return &entity.MarketPrice{
		ID:         data.ID,
		CropType:   data.CropType,
		MarketName: data.MarketName,
		Region:     data.Region,
		Price:      data.Price,
		Unit:       data.Unit,
		Trend:      entity.PriceTrend(data.Trend),
		ReportedBy: data.ReportedBy,
		PriceDate:  data.PriceDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromMarketPriceDomain converts a domain MarketPrice entity to a GORM MarketPriceModel.
func fromMarketPriceDomain(data *entity.MarketPrice) *model.MarketPriceModel {
	if data == nil {
		return nil
	}

	return &model.MarketPriceModel{
		ID:         data.ID,
		CropType:   data.CropType,
		MarketName: data.MarketName,
		Region:     data.Region,
		Price:      data.Price,
		Unit:       data.Unit,
		Trend:      string(data.Trend),
		ReportedBy: data.ReportedBy,
		PriceDate:  data.PriceDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toWeatherDomain converts a GORM WeatherDataModel to a domain WeatherData entity.
func toWeatherDomain(data *model.WeatherDataModel) *entity.WeatherData {
	if data == nil {
		return nil
	}

	return &entity.WeatherData{
		ID:           data.ID,
		Region:       data.Region,
		District:     data.District,
		TemperatureC: data.TemperatureC,
		HumidityPct:  data.HumidityPct,
		RainfallMM:   data.RainfallMM,
		WindSpeedKPH: data.WindSpeedKPH,
		Condition:    data.Condition,
		Advisory:     data.Advisory,
		ForecastDate: data.ForecastDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromWeatherDomain converts a domain WeatherData entity to a GORM WeatherDataModel.
func fromWeatherDomain(data *entity.WeatherData) *model.WeatherDataModel {
	if data == nil {
		return nil
	}

	return &model.WeatherDataModel{
		ID:           data.ID,
		Region:       data.Region,
		District:     data.District,
		TemperatureC: data.TemperatureC,
		HumidityPct:  data.HumidityPct,
		RainfallMM:   data.RainfallMM,
		WindSpeedKPH: data.WindSpeedKPH,
		Condition:    data.Condition,
		Advisory:     data.Advisory,
		ForecastDate: data.ForecastDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
