// Package service contains hand-maintained testify mocks for the domain
// service interfaces, used by the usecase tests.
package service

import (
	"context"
	"io"
	"time"

	"adinas/internal/domain/service"

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

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	ret := m.Called(userID, role)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := m.Called(tokenString)
	claims, _ := ret.Get(0).(*service.Claims)

	return claims, ret.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(t, &m.Mock)

	return m
}

func (m *MockEventPublisher) PublishActivityEvent(ctx context.Context, event *service.ActivityEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockPushService mocks service.PushService.
type MockPushService struct {
	mock.Mock
}

func NewMockPushService(t testingT) *MockPushService {
	m := &MockPushService{}
	register(t, &m.Mock)

	return m
}

func (m *MockPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	ret := m.Called(ctx, tokens, title, body, data)
	invalid, _ := ret.Get(2).([]string)

	return ret.Int(0), ret.Int(1), invalid, ret.Error(3)
}

func (m *MockPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	return m.Called(ctx, token, title, body, data).Error(0)
}

// MockFileStorage mocks service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func NewMockFileStorage(t testingT) *MockFileStorage {
	m := &MockFileStorage{}
	register(t, &m.Mock)

	return m
}

func (m *MockFileStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ret := m.Called(ctx, key, contentType, body)

	return ret.String(0), ret.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockFileStorage) Close() error {
	return m.Called().Error(0)
}
