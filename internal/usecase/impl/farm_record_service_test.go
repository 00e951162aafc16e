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

// farmRecordServiceFixtures holds all test dependencies for farm record service tests.
type farmRecordServiceFixtures struct {
	service    usecase.FarmRecordUsecase
	txManager  *mockRepo.MockTransactionManager
	recordRepo *mockRepo.MockFarmRecordRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestFarmRecordService(t *testing.T) farmRecordServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recordRepo := mockRepo.NewMockFarmRecordRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewFarmRecordService(
		txManager,
		recordRepo,
		publisher,
		newDiscardLogger(),
	)

	return farmRecordServiceFixtures{
		service:    service,
		txManager:  txManager,
		recordRepo: recordRepo,
		publisher:  publisher,
	}
}

func harvestRecord(farmerID uuid.UUID) *entity.FarmRecord {
	return &entity.FarmRecord{
		ID:          uuid.New(),
		FarmerID:    farmerID,
		Type:        entity.FarmRecordTypeHarvest,
		CropType:    "maize",
		Description: "First harvest of the season",
		Quantity:    12,
		Unit:        "bag",
		RecordDate:  time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestFarmRecordService_Create_Success(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}

	input := &usecase.CreateFarmRecordInput{
		Type:        entity.FarmRecordTypeExpense,
		CropType:    "coffee",
		Description: "Bought copper fungicide",
		Amount:      38000,
		RecordDate:  time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockRecordRepo.On("Create", ctx, mock.MatchedBy(func(record *entity.FarmRecord) bool {
		return record.FarmerID == actor.ID && record.Type == entity.FarmRecordTypeExpense
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionFarmRecordCreated
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	record, err := fx.service.Create(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, actor.ID, record.FarmerID)
	assert.Equal(t, float64(38000), record.Amount)
	assert.Equal(t, input.RecordDate, record.RecordDate)
}

func TestFarmRecordService_Create_DefaultsRecordDate(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockRecordRepo.On("Create", ctx, mock.AnythingOfType("*entity.FarmRecord")).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	record, err := fx.service.Create(ctx, actor, &usecase.CreateFarmRecordInput{
		Type:     entity.FarmRecordTypePlanting,
		CropType: "beans",
	})

	require.NoError(t, err)
	assert.False(t, record.RecordDate.IsZero())
}

func TestFarmRecordService_Create_UnknownType(t *testing.T) {
	fx := createTestFarmRecordService(t)

	_, err := fx.service.Create(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer},
		&usecase.CreateFarmRecordInput{Type: entity.FarmRecordType("irrigating")})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestFarmRecordService_GetByID_HiddenFromOtherFarmers(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	record := harvestRecord(uuid.New())

	fx.recordRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	_, err := fx.service.GetByID(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, record.ID)

	require.Error(t, err)
	// The journal is private; foreign rows read as missing.
	assertAppErrorCode(t, err, "FARM_RECORD_NOT_FOUND")
}

func TestFarmRecordService_GetByID_AdminAllowed(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	record := harvestRecord(uuid.New())

	fx.recordRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	got, err := fx.service.GetByID(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, record.ID)

	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
}

func TestFarmRecordService_List_ScopedToActor(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}

	fx.recordRepo.On("List", ctx, mock.MatchedBy(func(filter repository.FarmRecordListFilter) bool {
		return filter.FarmerID == actor.ID && filter.CropType == "maize"
	})).Return([]*entity.FarmRecord{harvestRecord(actor.ID)}, int64(1), nil)

	output, err := fx.service.List(ctx, actor, &usecase.ListFarmRecordsInput{CropType: "maize"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
}

func TestFarmRecordService_Summary(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	fx.recordRepo.On("Summarize", ctx, actor.ID, from, to).Return(&repository.FarmRecordSummary{
		TotalExpenses: 150000,
		TotalSales:    420000,
		RecordCount:   9,
	}, nil)

	summary, err := fx.service.Summary(ctx, actor, from, to)

	require.NoError(t, err)
	assert.Equal(t, float64(420000), summary.TotalSales)
	assert.Equal(t, int64(9), summary.RecordCount)
}

func TestFarmRecordService_Update_NotOwner(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	record := harvestRecord(uuid.New())
	stranger := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockRecordRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	fx.txManager.Passthrough(mockFactory)

	quantity := 20.0
	_, err := fx.service.Update(ctx, stranger, record.ID, &usecase.UpdateFarmRecordInput{Quantity: &quantity})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestFarmRecordService_Update_Success(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	record := harvestRecord(farmerID)
	actor := entity.Actor{ID: farmerID, Role: entity.RoleFarmer}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockRecordRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRecordRepo.On("Update", ctx, record).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionFarmRecordUpdated
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	quantity := 15.0
	amount := 525000.0
	updated, err := fx.service.Update(ctx, actor, record.ID, &usecase.UpdateFarmRecordInput{
		Quantity: &quantity,
		Amount:   &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Quantity)
	assert.Equal(t, 525000.0, updated.Amount)
	assert.Equal(t, "maize", updated.CropType)
}

func TestFarmRecordService_Delete_Success(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	record := harvestRecord(farmerID)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockRecordRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRecordRepo.On("Delete", ctx, record.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionFarmRecordDeleted
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, entity.Actor{ID: farmerID, Role: entity.RoleFarmer}, record.ID))
}

func TestFarmRecordService_Delete_NotFound(t *testing.T) {
	fx := createTestFarmRecordService(t)

	ctx := context.Background()
	recordID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRecordRepo := mockRepo.NewMockFarmRecordRepository(t)

	mockFactory.On("NewFarmRecordRepository").Return(repository.FarmRecordRepository(mockRecordRepo))
	mockRecordRepo.On("FindByID", ctx, recordID).Return(nil, repository.ErrFarmRecordNotFound)

	fx.txManager.Passthrough(mockFactory)

	err := fx.service.Delete(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, recordID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "FARM_RECORD_NOT_FOUND")
}
