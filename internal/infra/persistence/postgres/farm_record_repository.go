package postgres

import (
	"context"
	"time"

	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmRecordRepository implements the repository.FarmRecordRepository interface.
type farmRecordRepository struct {
	db *gorm.DB
}

// NewFarmRecordRepository is the constructor for farmRecordRepository.
func NewFarmRecordRepository(db *gorm.DB) repository.FarmRecordRepository {
	return &farmRecordRepository{
		db: db,
	}
}

// Create persists a new farm record.
func (repo *farmRecordRepository) Create(ctx context.Context, record *entity.FarmRecord) error {
	recordM := fromFarmRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid farmer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByID retrieves a farm record by its unique ID.
func (repo *farmRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FarmRecord, error) {
	var recordM model.FarmRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm record by ID")
	}

	return toFarmRecordDomain(&recordM), nil
}

// List retrieves farm records matching the filter along with the total count.
func (repo *farmRecordRepository) List(ctx context.Context, filter repository.FarmRecordListFilter) ([]*entity.FarmRecord, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FarmRecordModel{}).
		Where("farmer_id = ?", filter.FarmerID)

	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.CropType != "" {
		query = query.Where("crop_type = ?", filter.CropType)
	}
	if !filter.From.IsZero() {
		query = query.Where("record_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("record_date <= ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count farm records")
	}

	var recordModels []*model.FarmRecordModel
	if err := query.
		Order("record_date DESC, created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&recordModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list farm records")
	}

	records := make([]*entity.FarmRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toFarmRecordDomain(recordM))
	}

	return records, total, nil
}

// Summarize aggregates expenses and sales for a farmer over a period.
func (repo *farmRecordRepository) Summarize(ctx context.Context, farmerID uuid.UUID, from, to time.Time) (*repository.FarmRecordSummary, error) {
	var result struct {
		TotalExpenses float64
		TotalSales    float64
		RecordCount   int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.FarmRecordModel{}).
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE type = ?), 0) AS total_expenses, "+
				"COALESCE(SUM(amount) FILTER (WHERE type = ?), 0) AS total_sales, "+
				"COUNT(*) AS record_count",
			string(entity.FarmRecordTypeExpense), string(entity.FarmRecordTypeSale),
		).
		Where("farmer_id = ?", farmerID)

	if !from.IsZero() {
		query = query.Where("record_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("record_date <= ?", to)
	}

	if err := query.Scan(&result).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize farm records")
	}

	return &repository.FarmRecordSummary{
		TotalExpenses: result.TotalExpenses,
		TotalSales:    result.TotalSales,
		RecordCount:   result.RecordCount,
	}, nil
}

// Update modifies an existing farm record.
func (repo *farmRecordRepository) Update(ctx context.Context, record *entity.FarmRecord) error {
	recordM := fromFarmRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Model(&model.FarmRecordModel{}).
		Where("id = ?", record.ID).
		Select("type", "crop_type", "description", "quantity", "unit", "amount", "record_date").
		Updates(recordM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update farm record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmRecordNotFound
	}

	return nil
}

// Delete removes a farm record by its ID.
func (repo *farmRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FarmRecordModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete farm record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmRecordNotFound
	}

	return nil
}

// toFarmRecordDomain converts a GORM FarmRecordModel to a domain FarmRecord entity.
func toFarmRecordDomain(data *model.FarmRecordModel) *entity.FarmRecord {
	if data == nil {
		return nil
	}

	return &entity.FarmRecord{
		ID:          data.ID,
		FarmerID:    data.FarmerID,
		Type:        entity.FarmRecordType(data.Type),
		CropType:    data.CropType,
		Description: data.Description,
		Quantity:    data.Quantity,
		Unit:        data.Unit,
		Amount:      data.Amount,
		RecordDate:  data.RecordDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromFarmRecordDomain converts a domain FarmRecord entity to a GORM FarmRecordModel.
func fromFarmRecordDomain(data *entity.FarmRecord) *model.FarmRecordModel {
	if data == nil {
		return nil
	}

	return &model.FarmRecordModel{
		ID:          data.ID,
		FarmerID:    data.FarmerID,
		Type:        string(data.Type),
		CropType:    data.CropType,
		Description: data.Description,
		Quantity:    data.Quantity,
		Unit:        data.Unit,
		Amount:      data.Amount,
		RecordDate:  data.RecordDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
