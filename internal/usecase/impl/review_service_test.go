package impl

import (
	"context"
	"testing"

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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewReviewService(
		txManager,
		reviewRepo,
		publisher,
		newDiscardLogger(),
	)

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

func TestReviewService_Create_ProductReview(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	productID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewProductRepository").Return(repository.ProductRepository(mockProductRepo))
	mockFactory.On("NewReviewRepository").Return(repository.ReviewRepository(mockReviewRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockProductRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	mockReviewRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.UserID == actor.ID && r.ReviewableID == productID && r.Rating == 4
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionReviewCreated && log.Metadata["rating"] == "4"
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	review, err := fx.service.Create(ctx, actor, &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableTypeProduct,
		ReviewableID:   productID,
		Rating:         4,
		Comment:        "Good germination rate.",
	})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, review.UserID)
}

func TestReviewService_Create_SupplierReviewResyncsRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	supplierID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewSupplierRepository").Return(repository.SupplierRepository(mockSupplierRepo))
	mockFactory.On("NewReviewRepository").Return(repository.ReviewRepository(mockReviewRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockSupplierRepo.On("FindByID", ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
	mockReviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mockReviewRepo.On("AverageRating", ctx, entity.ReviewableTypeSupplier, supplierID).Return(4.5, 2, nil)
	mockSupplierRepo.On("UpdateRating", ctx, supplierID, 4.5, 2).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	_, err := fx.service.Create(ctx, actor, &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableTypeSupplier,
		ReviewableID:   supplierID,
		Rating:         5,
	})

	require.NoError(t, err)
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	productID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)

	mockFactory.On("NewProductRepository").Return(repository.ProductRepository(mockProductRepo))
	mockFactory.On("NewReviewRepository").Return(repository.ReviewRepository(mockReviewRepo))

	mockProductRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	mockReviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(repository.ErrDuplicateReview)

	fx.txManager.Passthrough(mockFactory)

	review, err := fx.service.Create(ctx, actor, &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableTypeProduct,
		ReviewableID:   productID,
		Rating:         3,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assertAppErrorCode(t, err, "DUPLICATE_REVIEW")
}

func TestReviewService_Create_MissingTarget(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	ghostID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContentRepo := mockRepo.NewMockContentRepository(t)

	mockFactory.On("NewContentRepository").Return(repository.ContentRepository(mockContentRepo))
	mockContentRepo.On("FindByID", ctx, ghostID).Return(nil, repository.ErrContentNotFound)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Create(ctx, actor, &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableTypeContent,
		ReviewableID:   ghostID,
		Rating:         2,
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "REVIEWABLE_NOT_FOUND")
}

func TestReviewService_Create_UnknownType(t *testing.T) {
	fx := createTestReviewService(t)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Create(context.Background(), entity.Actor{ID: uuid.New()}, &usecase.CreateReviewInput{
		ReviewableType: entity.ReviewableType("shop"),
		ReviewableID:   uuid.New(),
		Rating:         3,
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Create(context.Background(), entity.Actor{ID: uuid.New()}, &usecase.CreateReviewInput{
			ReviewableType: entity.ReviewableTypeProduct,
			ReviewableID:   uuid.New(),
			Rating:         rating,
		})

		require.Error(t, err)
		assertAppErrorCode(t, err, "VALIDATION_FAILED")
	}
}
