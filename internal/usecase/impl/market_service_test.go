package impl

import (
	"context"
	"testing"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	mockRepo "adinas/internal/mocks/repository"
	mockSvc "adinas/internal/mocks/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// marketServiceFixtures holds all test dependencies for market service tests.
type marketServiceFixtures struct {
	service     usecase.MarketUsecase
	txManager   *mockRepo.MockTransactionManager
	priceRepo   *mockRepo.MockMarketPriceRepository
	weatherRepo *mockRepo.MockWeatherRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestMarketService(t *testing.T) marketServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	priceRepo := mockRepo.NewMockMarketPriceRepository(t)
	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewMarketService(
		txManager,
		priceRepo,
		weatherRepo,
		publisher,
		newDiscardLogger(),
	)

	return marketServiceFixtures{
		service:     service,
		txManager:   txManager,
		priceRepo:   priceRepo,
		weatherRepo: weatherRepo,
		publisher:   publisher,
	}
}

func TestMarketService_ReportPrice_DerivesTrendFromPrevious(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	priceDate := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	input := &usecase.ReportPriceInput{
		CropType:   "maize",
		MarketName: "Kibaigwa",
		Region:     "Dodoma",
		Price:      92000,
		Unit:       "100kg bag",
		PriceDate:  priceDate,
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockPriceRepo := mockRepo.NewMockMarketPriceRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewMarketPriceRepository").Return(repository.MarketPriceRepository(mockPriceRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockPriceRepo.On("FindLatest", ctx, "maize", "Kibaigwa", priceDate).
		Return(&entity.MarketPrice{Price: 85000}, nil)
	mockPriceRepo.On("Upsert", ctx, mock.MatchedBy(func(price *entity.MarketPrice) bool {
		return price.Trend == entity.PriceTrendUp && price.ReportedBy == officer.ID
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionMarketPriceUpserted && log.Metadata["price"] == "92000"
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	price, err := fx.service.ReportPrice(ctx, officer, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PriceTrendUp, price.Trend)
	assert.Equal(t, "Kibaigwa", price.MarketName)
}

func TestMarketService_ReportPrice_FirstReportIsStable(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockPriceRepo := mockRepo.NewMockMarketPriceRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewMarketPriceRepository").Return(repository.MarketPriceRepository(mockPriceRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockPriceRepo.On("FindLatest", ctx, "rice", "Mbeya Sokoine", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrMarketPriceNotFound)
	mockPriceRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.MarketPrice")).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	price, err := fx.service.ReportPrice(ctx, officer, &usecase.ReportPriceInput{
		CropType:   "rice",
		MarketName: "Mbeya Sokoine",
		Region:     "Mbeya",
		Price:      145000,
		Unit:       "100kg bag",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PriceTrendStable, price.Trend)
	assert.False(t, price.PriceDate.IsZero())
}

func TestMarketService_ReportPrice_FarmerForbidden(t *testing.T) {
	fx := createTestMarketService(t)

	_, err := fx.service.ReportPrice(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer},
		&usecase.ReportPriceInput{CropType: "maize", MarketName: "Kibaigwa", Price: 90000})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestMarketService_ReportPrice_NonPositivePrice(t *testing.T) {
	fx := createTestMarketService(t)

	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}

	_, err := fx.service.ReportPrice(context.Background(), officer,
		&usecase.ReportPriceInput{CropType: "maize", MarketName: "Kibaigwa", Price: 0})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestMarketService_ListPrices(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()

	fx.priceRepo.On("List", ctx, mock.MatchedBy(func(filter repository.MarketPriceListFilter) bool {
		return filter.CropType == "maize" && filter.Limit == usecase.DefaultPageSize
	})).Return([]*entity.MarketPrice{{CropType: "maize", Price: 92000}}, int64(1), nil)

	output, err := fx.service.ListPrices(ctx, &usecase.ListPricesInput{CropType: "maize"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
}

func TestMarketService_GetWeather_ClampsDays(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	snapshots := []*entity.WeatherData{{Region: "Morogoro", Condition: "rain"}}

	fx.weatherRepo.On("FindByRegion", ctx, "Morogoro", mock.AnythingOfType("time.Time"), 7).
		Return(snapshots, nil)

	got, err := fx.service.GetWeather(ctx, "Morogoro", 30)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMarketService_GetWeather_NoData(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()

	fx.weatherRepo.On("FindByRegion", ctx, "Katavi", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.WeatherData{}, nil)

	_, err := fx.service.GetWeather(ctx, "Katavi", 3)

	require.Error(t, err)
	assertAppErrorCode(t, err, "WEATHER_NOT_FOUND")
}

func TestMarketService_UpsertWeather_WritesAuditRow(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockWeatherRepo := mockRepo.NewMockWeatherRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewWeatherRepository").Return(repository.WeatherRepository(mockWeatherRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockWeatherRepo.On("Upsert", ctx, mock.MatchedBy(func(data *entity.WeatherData) bool {
		return data.Region == "Morogoro" && data.Condition == "thunderstorms"
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionWeatherUpserted &&
			log.ActorID == officer.ID &&
			log.Metadata["region"] == "Morogoro"
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	data, err := fx.service.UpsertWeather(ctx, officer, &usecase.UpsertWeatherInput{
		Region:       "Morogoro",
		District:     "Mvomero",
		TemperatureC: 27.5,
		RainfallMM:   18,
		Condition:    "thunderstorms",
		Advisory:     "Delay spraying until the rain passes.",
	})

	require.NoError(t, err)
	assert.False(t, data.ForecastDate.IsZero())
}

func TestMarketService_UpsertWeather_DealerForbidden(t *testing.T) {
	fx := createTestMarketService(t)

	_, err := fx.service.UpsertWeather(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleAgriDealer},
		&usecase.UpsertWeatherInput{Region: "Morogoro"})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}
