package impl

import (
	"context"
	"testing"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	mockRepo "adinas/internal/mocks/repository"
	mockSvc "adinas/internal/mocks/service"
	mockUC "adinas/internal/mocks/usecase"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// consultationServiceFixtures holds all test dependencies for consultation service tests.
type consultationServiceFixtures struct {
	service          usecase.ConsultationUsecase
	txManager        *mockRepo.MockTransactionManager
	consultationRepo *mockRepo.MockConsultationRepository
	notifier         *mockUC.MockNotificationUsecase
	publisher        *mockSvc.MockEventPublisher
}

func createTestConsultationService(t *testing.T) consultationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	consultationRepo := mockRepo.NewMockConsultationRepository(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewConsultationService(
		txManager,
		consultationRepo,
		notifier,
		publisher,
		newDiscardLogger(),
	)

	return consultationServiceFixtures{
		service:          service,
		txManager:        txManager,
		consultationRepo: consultationRepo,
		notifier:         notifier,
		publisher:        publisher,
	}
}

func pendingConsultation(farmerID uuid.UUID) *entity.Consultation {
	return &entity.Consultation{
		ID:       uuid.New(),
		FarmerID: farmerID,
		Subject:  "Yellowing maize leaves",
		Question: "My maize leaves turn yellow from the bottom up. What is wrong?",
		CropType: "maize",
		Status:   entity.ConsultationStatusPending,
	}
}

func TestConsultationService_Ask_Success(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	farmer := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockConsultationRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.FarmerID == farmer.ID && c.Status == entity.ConsultationStatusPending
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionConsultationAsked
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	consultation, err := fx.service.Ask(ctx, farmer, &usecase.AskConsultationInput{
		Subject:  "Yellowing maize leaves",
		Question: "What is wrong?",
		CropType: "maize",
	})

	require.NoError(t, err)
	assert.Equal(t, farmer.ID, consultation.FarmerID)
	assert.Equal(t, entity.ConsultationStatusPending, consultation.Status)
}

func TestConsultationService_Accept_Success(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	consultation := pendingConsultation(farmerID)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockConsultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)
	mockConsultationRepo.On("Update", ctx, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.Status == entity.ConsultationStatusAccepted &&
			c.OfficerID != nil && *c.OfficerID == officer.ID &&
			c.AcceptedAt != nil
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)
	fx.notifier.On("Notify", ctx, mock.MatchedBy(func(input *usecase.NotifyInput) bool {
		return input.UserID == farmerID && input.Type == entity.NotificationTypeConsultation
	})).Return(nil)

	accepted, err := fx.service.Accept(ctx, officer, consultation.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ConsultationStatusAccepted, accepted.Status)
}

func TestConsultationService_Accept_FarmerForbidden(t *testing.T) {
	fx := createTestConsultationService(t)

	_, err := fx.service.Accept(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, uuid.New())

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestConsultationService_Accept_AlreadyTaken(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	consultation := pendingConsultation(uuid.New())
	otherOfficer := uuid.New()
	consultation.OfficerID = &otherOfficer
	consultation.Status = entity.ConsultationStatusAccepted

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockConsultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Accept(ctx, officer, consultation.ID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "CONSULTATION_CLOSED")
}

func TestConsultationService_Complete_Success(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	consultation := pendingConsultation(farmerID)
	consultation.Status = entity.ConsultationStatusAccepted
	consultation.OfficerID = &officer.ID

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockConsultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)
	mockConsultationRepo.On("Update", ctx, mock.MatchedBy(func(c *entity.Consultation) bool {
		return c.Status == entity.ConsultationStatusCompleted &&
			c.Answer != "" && c.CompletedAt != nil
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)
	fx.notifier.On("Notify", ctx, mock.AnythingOfType("*usecase.NotifyInput")).Return(nil)

	completed, err := fx.service.Complete(ctx, officer, &usecase.CompleteConsultationInput{
		ConsultationID: consultation.ID,
		Answer:         "Likely nitrogen deficiency. Top-dress with urea at knee height.",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConsultationStatusCompleted, completed.Status)
}

func TestConsultationService_Complete_NotAssignedOfficer(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	assigned := uuid.New()
	other := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	consultation := pendingConsultation(uuid.New())
	consultation.Status = entity.ConsultationStatusAccepted
	consultation.OfficerID = &assigned

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockConsultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Complete(ctx, other, &usecase.CompleteConsultationInput{
		ConsultationID: consultation.ID,
		Answer:         "An answer from the wrong officer.",
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestConsultationService_Complete_MissingAnswer(t *testing.T) {
	fx := createTestConsultationService(t)

	_, err := fx.service.Complete(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}, &usecase.CompleteConsultationInput{
		ConsultationID: uuid.New(),
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestConsultationService_Cancel_CompletedFails(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	farmer := entity.Actor{ID: farmerID, Role: entity.RoleFarmer}
	consultation := pendingConsultation(farmerID)
	consultation.Status = entity.ConsultationStatusCompleted

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockConsultationRepo := mockRepo.NewMockConsultationRepository(t)

	mockFactory.On("NewConsultationRepository").Return(repository.ConsultationRepository(mockConsultationRepo))
	mockConsultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Cancel(ctx, farmer, consultation.ID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "CONSULTATION_CLOSED")
}

func TestConsultationService_GetByID_HiddenFromOtherFarmers(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	consultation := pendingConsultation(uuid.New())

	fx.consultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)

	_, err := fx.service.GetByID(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, consultation.ID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "CONSULTATION_NOT_FOUND")
}

func TestConsultationService_GetByID_PendingVisibleToOfficers(t *testing.T) {
	fx := createTestConsultationService(t)

	ctx := context.Background()
	consultation := pendingConsultation(uuid.New())

	fx.consultationRepo.On("FindByID", ctx, consultation.ID).Return(consultation, nil)

	got, err := fx.service.GetByID(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}, consultation.ID)

	require.NoError(t, err)
	assert.Equal(t, consultation.ID, got.ID)
}
