// Package usecase contains hand-maintained testify mocks for usecase
// interfaces that other usecases depend on.
package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockNotificationUsecase mocks usecase.NotificationUsecase.
type MockNotificationUsecase struct {
	mock.Mock
}

func NewMockNotificationUsecase(t testingT) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationUsecase) Notify(ctx context.Context, input *usecase.NotifyInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockNotificationUsecase) List(ctx context.Context, actor entity.Actor, input *usecase.ListNotificationsInput) (*usecase.NotificationListOutput, error) {
	ret := m.Called(ctx, actor, input)
	out, _ := ret.Get(0).(*usecase.NotificationListOutput)

	return out, ret.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) error {
	return m.Called(ctx, actor, notificationID).Error(0)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, actor entity.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *MockNotificationUsecase) RegisterDevice(ctx context.Context, actor entity.Actor, input *usecase.RegisterDeviceInput) error {
	return m.Called(ctx, actor, input).Error(0)
}

func (m *MockNotificationUsecase) UnregisterDevice(ctx context.Context, actor entity.Actor, token string) error {
	return m.Called(ctx, actor, token).Error(0)
}
