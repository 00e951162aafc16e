// Package repository contains hand-maintained testify mocks for the domain
// repository interfaces, used by the usecase tests.
package repository

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	register(t, &m.Mock)

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// Passthrough wires Execute to run the callback against the given factory,
// mirroring a transaction that commits when the callback succeeds.
func (m *MockTransactionManager) Passthrough(factory repository.RepositoryFactory) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	register(t, &m.Mock)

	return m
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return m.Called().Get(0).(repository.CredentialRepository)
}

func (m *MockRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return m.Called().Get(0).(repository.RefreshTokenRepository)
}

func (m *MockRepositoryFactory) NewSupplierRepository() repository.SupplierRepository {
	return m.Called().Get(0).(repository.SupplierRepository)
}

func (m *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) NewContentRepository() repository.ContentRepository {
	return m.Called().Get(0).(repository.ContentRepository)
}

func (m *MockRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return m.Called().Get(0).(repository.ReviewRepository)
}

func (m *MockRepositoryFactory) NewConsultationRepository() repository.ConsultationRepository {
	return m.Called().Get(0).(repository.ConsultationRepository)
}

func (m *MockRepositoryFactory) NewFarmRecordRepository() repository.FarmRecordRepository {
	return m.Called().Get(0).(repository.FarmRecordRepository)
}

func (m *MockRepositoryFactory) NewMarketPriceRepository() repository.MarketPriceRepository {
	return m.Called().Get(0).(repository.MarketPriceRepository)
}

func (m *MockRepositoryFactory) NewWeatherRepository() repository.WeatherRepository {
	return m.Called().Get(0).(repository.WeatherRepository)
}

func (m *MockRepositoryFactory) NewActivityLogRepository() repository.ActivityLogRepository {
	return m.Called().Get(0).(repository.ActivityLogRepository)
}

func (m *MockRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return m.Called().Get(0).(repository.NotificationRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := m.Called(ctx, id)
	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := m.Called(ctx, email)
	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	ret := m.Called(ctx, filter)
	users, _ := ret.Get(0).([]*entity.User)

	return users, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCredentialRepository mocks repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

func NewMockCredentialRepository(t testingT) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *MockCredentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	ret := m.Called(ctx, email)
	credential, _ := ret.Get(0).(*entity.Credential)

	return credential, ret.Error(1)
}

func (m *MockCredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	ret := m.Called(ctx, userID)
	credential, _ := ret.Get(0).(*entity.Credential)

	return credential, ret.Error(1)
}

func (m *MockCredentialRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func NewMockRefreshTokenRepository(t testingT) *MockRefreshTokenRepository {
	m := &MockRefreshTokenRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	ret := m.Called(ctx, tokenHash)
	token, _ := ret.Get(0).(*entity.RefreshToken)

	return token, ret.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

// MockSupplierRepository mocks repository.SupplierRepository.
type MockSupplierRepository struct {
	mock.Mock
}

func NewMockSupplierRepository(t testingT) *MockSupplierRepository {
	m := &MockSupplierRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	ret := m.Called(ctx, id)
	supplier, _ := ret.Get(0).(*entity.Supplier)

	return supplier, ret.Error(1)
}

func (m *MockSupplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error) {
	ret := m.Called(ctx, userID)
	supplier, _ := ret.Get(0).(*entity.Supplier)

	return supplier, ret.Error(1)
}

func (m *MockSupplierRepository) List(ctx context.Context, filter repository.SupplierListFilter) ([]*entity.Supplier, int64, error) {
	ret := m.Called(ctx, filter)
	suppliers, _ := ret.Get(0).([]*entity.Supplier)

	return suppliers, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error {
	return m.Called(ctx, id, rating, reviewsCount).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := m.Called(ctx, id)
	product, _ := ret.Get(0).(*entity.Product)

	return product, ret.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := m.Called(ctx, id)
	product, _ := ret.Get(0).(*entity.Product)

	return product, ret.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductListFilter) ([]*entity.Product, int64, error) {
	ret := m.Called(ctx, filter)
	products, _ := ret.Get(0).([]*entity.Product)

	return products, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockContentRepository mocks repository.ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

func NewMockContentRepository(t testingT) *MockContentRepository {
	m := &MockContentRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockContentRepository) Create(ctx context.Context, content *entity.Content) error {
	return m.Called(ctx, content).Error(0)
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	ret := m.Called(ctx, id)
	content, _ := ret.Get(0).(*entity.Content)

	return content, ret.Error(1)
}

func (m *MockContentRepository) FindBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	ret := m.Called(ctx, slug)
	content, _ := ret.Get(0).(*entity.Content)

	return content, ret.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, filter repository.ContentListFilter) ([]*entity.Content, int64, error) {
	ret := m.Called(ctx, filter)
	items, _ := ret.Get(0).([]*entity.Content)

	return items, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockContentRepository) Update(ctx context.Context, content *entity.Content) error {
	return m.Called(ctx, content).Error(0)
}

func (m *MockContentRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository(t testingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	ret := m.Called(ctx, id)
	review, _ := ret.Get(0).(*entity.Review)

	return review, ret.Error(1)
}

func (m *MockReviewRepository) ListByReviewable(ctx context.Context, reviewableType entity.ReviewableType, reviewableID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error) {
	ret := m.Called(ctx, reviewableType, reviewableID, limit, offset)
	reviews, _ := ret.Get(0).([]*entity.Review)

	return reviews, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error) {
	ret := m.Called(ctx, userID, limit, offset)
	reviews, _ := ret.Get(0).([]*entity.Review)

	return reviews, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, reviewableType entity.ReviewableType, reviewableID uuid.UUID) (float64, int, error) {
	ret := m.Called(ctx, reviewableType, reviewableID)

	return ret.Get(0).(float64), ret.Get(1).(int), ret.Error(2)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockConsultationRepository mocks repository.ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

func NewMockConsultationRepository(t testingT) *MockConsultationRepository {
	m := &MockConsultationRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	return m.Called(ctx, consultation).Error(0)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	ret := m.Called(ctx, id)
	consultation, _ := ret.Get(0).(*entity.Consultation)

	return consultation, ret.Error(1)
}

func (m *MockConsultationRepository) List(ctx context.Context, filter repository.ConsultationListFilter) ([]*entity.Consultation, int64, error) {
	ret := m.Called(ctx, filter)
	consultations, _ := ret.Get(0).([]*entity.Consultation)

	return consultations, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockConsultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	return m.Called(ctx, consultation).Error(0)
}

// MockFarmRecordRepository mocks repository.FarmRecordRepository.
type MockFarmRecordRepository struct {
	mock.Mock
}

func NewMockFarmRecordRepository(t testingT) *MockFarmRecordRepository {
	m := &MockFarmRecordRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockFarmRecordRepository) Create(ctx context.Context, record *entity.FarmRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockFarmRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FarmRecord, error) {
	ret := m.Called(ctx, id)
	record, _ := ret.Get(0).(*entity.FarmRecord)

	return record, ret.Error(1)
}

func (m *MockFarmRecordRepository) List(ctx context.Context, filter repository.FarmRecordListFilter) ([]*entity.FarmRecord, int64, error) {
	ret := m.Called(ctx, filter)
	records, _ := ret.Get(0).([]*entity.FarmRecord)

	return records, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockFarmRecordRepository) Summarize(ctx context.Context, farmerID uuid.UUID, from, to time.Time) (*repository.FarmRecordSummary, error) {
	ret := m.Called(ctx, farmerID, from, to)
	summary, _ := ret.Get(0).(*repository.FarmRecordSummary)

	return summary, ret.Error(1)
}

func (m *MockFarmRecordRepository) Update(ctx context.Context, record *entity.FarmRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockFarmRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockMarketPriceRepository mocks repository.MarketPriceRepository.
type MockMarketPriceRepository struct {
	mock.Mock
}

func NewMockMarketPriceRepository(t testingT) *MockMarketPriceRepository {
	m := &MockMarketPriceRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockMarketPriceRepository) Upsert(ctx context.Context, price *entity.MarketPrice) error {
	return m.Called(ctx, price).Error(0)
}

func (m *MockMarketPriceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketPrice, error) {
	ret := m.Called(ctx, id)
	price, _ := ret.Get(0).(*entity.MarketPrice)

	return price, ret.Error(1)
}

func (m *MockMarketPriceRepository) FindLatest(ctx context.Context, cropType, marketName string, before time.Time) (*entity.MarketPrice, error) {
	ret := m.Called(ctx, cropType, marketName, before)
	price, _ := ret.Get(0).(*entity.MarketPrice)

	return price, ret.Error(1)
}

func (m *MockMarketPriceRepository) List(ctx context.Context, filter repository.MarketPriceListFilter) ([]*entity.MarketPrice, int64, error) {
	ret := m.Called(ctx, filter)
	prices, _ := ret.Get(0).([]*entity.MarketPrice)

	return prices, ret.Get(1).(int64), ret.Error(2)
}

// MockWeatherRepository mocks repository.WeatherRepository.
type MockWeatherRepository struct {
	mock.Mock
}

func NewMockWeatherRepository(t testingT) *MockWeatherRepository {
	m := &MockWeatherRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockWeatherRepository) Upsert(ctx context.Context, data *entity.WeatherData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockWeatherRepository) FindByRegion(ctx context.Context, region string, from time.Time, limit int) ([]*entity.WeatherData, error) {
	ret := m.Called(ctx, region, from, limit)
	data, _ := ret.Get(0).([]*entity.WeatherData)

	return data, ret.Error(1)
}

// MockStatsRepository mocks repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func NewMockStatsRepository(t testingT) *MockStatsRepository {
	m := &MockStatsRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockStatsRepository) Platform(ctx context.Context) (*repository.PlatformStats, error) {
	ret := m.Called(ctx)
	stats, _ := ret.Get(0).(*repository.PlatformStats)

	return stats, ret.Error(1)
}

// MockActivityLogRepository mocks repository.ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func NewMockActivityLogRepository(t testingT) *MockActivityLogRepository {
	m := &MockActivityLogRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockActivityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockActivityLogRepository) List(ctx context.Context, filter repository.ActivityListFilter) ([]*entity.ActivityLog, int64, error) {
	ret := m.Called(ctx, filter)
	logs, _ := ret.Get(0).([]*entity.ActivityLog)

	return logs, ret.Get(1).(int64), ret.Error(2)
}

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func NewMockNotificationRepository(t testingT) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	ret := m.Called(ctx, id)
	notification, _ := ret.Get(0).(*entity.Notification)

	return notification, ret.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error) {
	ret := m.Called(ctx, userID, unreadOnly, limit, offset)
	notifications, _ := ret.Get(0).([]*entity.Notification)

	return notifications, ret.Get(1).(int64), ret.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := m.Called(ctx, userID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockDeviceTokenRepository mocks repository.DeviceTokenRepository.
type MockDeviceTokenRepository struct {
	mock.Mock
}

func NewMockDeviceTokenRepository(t testingT) *MockDeviceTokenRepository {
	m := &MockDeviceTokenRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockDeviceTokenRepository) Upsert(ctx context.Context, token *entity.DeviceToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockDeviceTokenRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	ret := m.Called(ctx, userID)
	tokens, _ := ret.Get(0).([]*entity.DeviceToken)

	return tokens, ret.Error(1)
}

func (m *MockDeviceTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockDeviceTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
