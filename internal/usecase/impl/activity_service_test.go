package impl

import (
	"context"
	"testing"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	mockRepo "adinas/internal/mocks/repository"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_List_NotAdmin(t *testing.T) {
	activityRepo := mockRepo.NewMockActivityLogRepository(t)
	service := NewActivityService(activityRepo, newDiscardLogger())

	_, err := service.List(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleAgriCompany},
		&usecase.ListActivityInput{})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestActivityService_List_Success(t *testing.T) {
	activityRepo := mockRepo.NewMockActivityLogRepository(t)
	service := NewActivityService(activityRepo, newDiscardLogger())

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	actorID := uuid.New()

	activityRepo.On("List", ctx, mock.MatchedBy(func(filter repository.ActivityListFilter) bool {
		return filter.ActorID == actorID &&
			filter.Action == entity.ActionStockAdjusted &&
			filter.Limit == usecase.DefaultPageSize
	})).Return([]*entity.ActivityLog{
		{ID: uuid.New(), ActorID: actorID, Action: entity.ActionStockAdjusted},
	}, int64(1), nil)

	output, err := service.List(ctx, admin, &usecase.ListActivityInput{
		ActorID: actorID,
		Action:  entity.ActionStockAdjusted,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Len(t, output.Logs, 1)
}
