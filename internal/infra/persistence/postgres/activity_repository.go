package postgres

import (
	"context"

	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface.
// The table is append-only; no update or delete is exposed.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{
		db: db,
	}
}

// Create appends a new log row.
func (repo *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromActivityLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List retrieves log rows matching the filter, newest first, along with the total count.
func (repo *activityLogRepository) List(ctx context.Context, filter repository.ActivityListFilter) ([]*entity.ActivityLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{})

	if filter.ActorID != uuid.Nil {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != uuid.Nil {
		query = query.Where("resource_id = ?", filter.ResourceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	var logModels []*model.ActivityLogModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toActivityLogDomain(logM))
	}

	return logs, total, nil
}

// toActivityLogDomain converts a GORM ActivityLogModel to a domain ActivityLog entity.
func toActivityLogDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:           data.ID,
		ActorID:      data.ActorID,
		Action:       data.Action,
		ResourceType: data.ResourceType,
		ResourceID:   data.ResourceID,
		Description:  data.Description,
		Metadata:     data.Metadata,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		CreatedAt:    data.CreatedAt,
	}
}

// fromActivityLogDomain converts a domain ActivityLog entity to a GORM ActivityLogModel.
func fromActivityLogDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:           data.ID,
		ActorID:      data.ActorID,
		Action:       data.Action,
		ResourceType: data.ResourceType,
		ResourceID:   data.ResourceID,
		Description:  data.Description,
		Metadata:     data.Metadata,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		CreatedAt:    data.CreatedAt,
	}
}
