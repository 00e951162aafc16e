package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// marketService implements the MarketUsecase interface.
type marketService struct {
	txManager   repository.TransactionManager
	priceRepo   repository.MarketPriceRepository
	weatherRepo repository.WeatherRepository
	recorder    *activityRecorder
	logger      *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(
	txManager repository.TransactionManager,
	priceRepo repository.MarketPriceRepository,
	weatherRepo repository.WeatherRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MarketUsecase {
	return &marketService{
		txManager:   txManager,
		priceRepo:   priceRepo,
		weatherRepo: weatherRepo,
		recorder:    newActivityRecorder(publisher, logger),
		logger:      logger,
	}
}

// reporterRoles may publish market and weather data.
var reporterRoles = entity.Roles{entity.RoleExtensionOfficer, entity.RoleAdmin}

// ReportPrice upserts a commodity price for a market and day.
func (srv *marketService) ReportPrice(ctx context.Context, actor entity.Actor, input *usecase.ReportPriceInput) (*entity.MarketPrice, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Reporting market price", "crop", input.CropType, "market", input.MarketName)

	if !reporterRoles.Contains(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("price report rejected")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	priceDate := input.PriceDate
	if priceDate.IsZero() {
		priceDate = time.Now()
	}

	var (
		reported *entity.MarketPrice
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		priceRepo := repoFactory.NewMarketPriceRepository()

		price := &entity.MarketPrice{
			ID:         uuid.New(),
			CropType:   input.CropType,
			MarketName: input.MarketName,
			Region:     input.Region,
			Price:      input.Price,
			Unit:       input.Unit,
			Trend:      entity.PriceTrendStable,
			ReportedBy: actor.ID,
			PriceDate:  priceDate,
		}

		// Derive the trend from the previous report for the same crop and market.
		previous, err := priceRepo.FindLatest(ctx, input.CropType, input.MarketName, priceDate)
		if err == nil {
			price.Trend = price.TrendAgainst(previous.Price)
		} else if !errors.Is(err, repository.ErrMarketPriceNotFound) {
			return errors.Wrap(err, "failed to find previous price")
		}

		if err := priceRepo.Upsert(ctx, price); err != nil {
			return errors.Wrap(err, "failed to upsert market price")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionMarketPriceUpserted, "market_price", price.ID,
			"reported "+price.CropType+" price at "+price.MarketName,
			map[string]string{
				"crop":   price.CropType,
				"market": price.MarketName,
				"price":  strconv.FormatFloat(price.Price, 'f', -1, 64),
			})
		if err != nil {
			return err
		}
		reported = price

		return nil
	})

	if err != nil {
		logger.Warn("Price report failed", "crop", input.CropType, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute price report transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return reported, nil
}

// ListPrices retrieves market prices matching the filter.
func (srv *marketService) ListPrices(ctx context.Context, input *usecase.ListPricesInput) (*usecase.PriceListOutput, error) {
	prices, total, err := srv.priceRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list market prices")
	}

	return &usecase.PriceListOutput{Prices: prices, Total: total}, nil
}

// GetWeather retrieves upcoming weather snapshots for a region.
func (srv *marketService) GetWeather(ctx context.Context, region string, days int) ([]*entity.WeatherData, error) {
	if days < 1 || days > 14 {
		days = 7
	}

	snapshots, err := srv.weatherRepo.FindByRegion(ctx, region, time.Now().Truncate(24*time.Hour), days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find weather data")
	}
	if len(snapshots) == 0 {
		return nil, domainerrors.ErrWeatherNotFound.WrapMessage("weather lookup failed")
	}

	return snapshots, nil
}

// UpsertWeather stores a weather snapshot.
func (srv *marketService) UpsertWeather(ctx context.Context, actor entity.Actor, input *usecase.UpsertWeatherInput) (*entity.WeatherData, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if !reporterRoles.Contains(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("weather upsert rejected")
	}

	forecastDate := input.ForecastDate
	if forecastDate.IsZero() {
		forecastDate = time.Now()
	}

	var (
		upserted *entity.WeatherData
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		data := &entity.WeatherData{
			ID:           uuid.New(),
			Region:       input.Region,
			District:     input.District,
			TemperatureC: input.TemperatureC,
			HumidityPct:  input.HumidityPct,
			RainfallMM:   input.RainfallMM,
			WindSpeedKPH: input.WindSpeedKPH,
			Condition:    input.Condition,
			Advisory:     input.Advisory,
			ForecastDate: forecastDate,
		}

		if err := repoFactory.NewWeatherRepository().Upsert(ctx, data); err != nil {
			return errors.Wrap(err, "failed to upsert weather data")
		}

		var err error
		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionWeatherUpserted, "weather", data.ID,
			"reported weather for "+data.Region,
			map[string]string{"region": data.Region, "district": data.District})
		if err != nil {
			return err
		}
		upserted = data

		return nil
	})

	if err != nil {
		logger.Warn("Weather upsert failed", "region", input.Region, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute weather upsert transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return upserted, nil
}
