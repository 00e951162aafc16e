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

// supplierServiceFixtures holds all test dependencies for supplier service tests.
type supplierServiceFixtures struct {
	service      usecase.SupplierUsecase
	txManager    *mockRepo.MockTransactionManager
	supplierRepo *mockRepo.MockSupplierRepository
	notifier     *mockUC.MockNotificationUsecase
	publisher    *mockSvc.MockEventPublisher
}

func createTestSupplierService(t *testing.T) supplierServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewSupplierService(
		txManager,
		supplierRepo,
		notifier,
		publisher,
		newDiscardLogger(),
	)

	return supplierServiceFixtures{
		service:      service,
		txManager:    txManager,
		supplierRepo: supplierRepo,
		notifier:     notifier,
		publisher:    publisher,
	}
}

func pendingSupplier(ownerID uuid.UUID) *entity.Supplier {
	return &entity.Supplier{
		ID:                 uuid.New(),
		UserID:             ownerID,
		CompanyName:        "Mbeya Agro Input Centre",
		Type:               entity.SupplierTypeInputDealer,
		Region:             "Mbeya",
		VerificationStatus: entity.VerificationPending,
	}
}

func TestSupplierService_CreateProfile_Success(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleAgriDealer}
	input := &usecase.CreateSupplierInput{
		CompanyName:     "Mbeya Agro Input Centre",
		BusinessLicense: "TIN-123-456-789",
		Type:            entity.SupplierTypeInputDealer,
		Region:          "Mbeya",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockSupplierRepo.On("FindByUserID", ctx, actor.ID).Return(nil, repository.ErrSupplierNotFound)
	mockSupplierRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.Supplier) bool {
		return s.UserID == actor.ID && s.VerificationStatus == entity.VerificationPending
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	supplier, err := fx.service.CreateProfile(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, supplier.VerificationStatus)
	assert.Equal(t, "Mbeya Agro Input Centre", supplier.CompanyName)
}

func TestSupplierService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleAgriDealer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockSupplierRepo.On("FindByUserID", ctx, actor.ID).Return(pendingSupplier(actor.ID), nil)

	fx.txManager.Passthrough(mockFactory)

	supplier, err := fx.service.CreateProfile(ctx, actor, &usecase.CreateSupplierInput{
		CompanyName: "Second Shop",
		Type:        entity.SupplierTypeInputDealer,
	})

	require.Error(t, err)
	assert.Nil(t, supplier)
	assertAppErrorCode(t, err, "SUPPLIER_ALREADY_EXISTS")
}

func TestSupplierService_CreateProfile_UnknownType(t *testing.T) {
	fx := createTestSupplierService(t)

	_, err := fx.service.CreateProfile(context.Background(), entity.Actor{ID: uuid.New()}, &usecase.CreateSupplierInput{
		CompanyName: "Shop",
		Type:        entity.SupplierType("wholesaler"),
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestSupplierService_Verify_Success(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	ownerID := uuid.New()
	supplier := pendingSupplier(ownerID)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockSupplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	mockSupplierRepo.On("Update", ctx, mock.MatchedBy(func(s *entity.Supplier) bool {
		return s.VerificationStatus == entity.VerificationVerified
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionSupplierVerified
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)
	fx.notifier.On("Notify", ctx, mock.MatchedBy(func(input *usecase.NotifyInput) bool {
		return input.UserID == ownerID && input.Type == entity.NotificationTypeVerification
	})).Return(nil)

	decided, err := fx.service.Verify(ctx, admin, supplier.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationVerified, decided.VerificationStatus)
}

func TestSupplierService_Verify_NotAdmin(t *testing.T) {
	fx := createTestSupplierService(t)

	_, err := fx.service.Verify(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAgriDealer}, uuid.New())

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestSupplierService_Verify_AlreadyDecided(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	supplier := pendingSupplier(uuid.New())
	supplier.VerificationStatus = entity.VerificationRejected

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockSupplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	// No Update expectation: a decided profile never moves again.

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Verify(ctx, admin, supplier.ID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "VERIFICATION_CONFLICT")
}

func TestSupplierService_Reject_Success(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	ownerID := uuid.New()
	supplier := pendingSupplier(ownerID)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockSupplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	mockSupplierRepo.On("Update", ctx, mock.MatchedBy(func(s *entity.Supplier) bool {
		return s.VerificationStatus == entity.VerificationRejected
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionSupplierRejected && log.Metadata["reason"] == "license expired"
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)
	fx.notifier.On("Notify", ctx, mock.AnythingOfType("*usecase.NotifyInput")).Return(nil)

	decided, err := fx.service.Reject(ctx, admin, &usecase.RejectSupplierInput{
		SupplierID: supplier.ID,
		Reason:     "license expired",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationRejected, decided.VerificationStatus)
}

func TestSupplierService_Reject_MissingReason(t *testing.T) {
	fx := createTestSupplierService(t)

	_, err := fx.service.Reject(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, &usecase.RejectSupplierInput{
		SupplierID: uuid.New(),
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestSupplierService_Update_NotOwner(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	stranger := entity.Actor{ID: uuid.New(), Role: entity.RoleAgriDealer}
	supplier := pendingSupplier(uuid.New())

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockSupplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)

	fx.txManager.Passthrough(mockFactory)

	name := "Renamed"
	_, err := fx.service.Update(ctx, stranger, supplier.ID, &usecase.UpdateSupplierInput{CompanyName: &name})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestSupplierService_GetMine_NotFound(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	fx.supplierRepo.On("FindByUserID", ctx, actor.ID).Return(nil, repository.ErrSupplierNotFound)

	supplier, err := fx.service.GetMine(ctx, actor)

	require.Error(t, err)
	assert.Nil(t, supplier)
	assertAppErrorCode(t, err, "SUPPLIER_NOT_FOUND")
}
