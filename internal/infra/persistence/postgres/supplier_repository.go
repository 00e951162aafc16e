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

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create persists a new supplier profile.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		// The unique index on user_id backs the one-profile-per-user invariant.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSupplier
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	// Update the entity with generated values
	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// FindByID retrieves a supplier profile by its unique ID.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindByUserID retrieves the supplier profile belonging to a user.
func (repo *supplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by user ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// List retrieves supplier profiles matching the filter along with the total count.
func (repo *supplierRepository) List(ctx context.Context, filter repository.SupplierListFilter) ([]*entity.Supplier, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SupplierModel{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.VerificationStatus != "" {
		query = query.Where("verification_status = ?", filter.VerificationStatus.String())
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Search != "" {
		query = query.Where("company_name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count suppliers")
	}

	var supplierModels []*model.SupplierModel
	if err := query.
		Order("rating DESC, created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&supplierModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, total, nil
}

// Update modifies an existing supplier profile.
func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Select("company_name", "business_license", "type", "description", "address",
			"region", "district", "operating_hours", "delivery_areas", "verification_status").
		Updates(supplierM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// UpdateRating recalculates and stores the aggregate rating and review count.
func (repo *supplierRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"reviews_count": reviewsCount,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update supplier rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:                 data.ID,
		UserID:             data.UserID,
		CompanyName:        data.CompanyName,
		BusinessLicense:    data.BusinessLicense,
		Type:               entity.SupplierType(data.Type),
		Description:        data.Description,
		Address:            data.Address,
		Region:             data.Region,
		District:           data.District,
		OperatingHours:     data.OperatingHours,
		DeliveryAreas:      data.DeliveryAreas,
		VerificationStatus: entity.VerificationStatus(data.VerificationStatus),
		Rating:             data.Rating,
		ReviewsCount:       data.ReviewsCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		CompanyName:        data.CompanyName,
		BusinessLicense:    data.BusinessLicense,
		Type:               data.Type.String(),
		Description:        data.Description,
		Address:            data.Address,
		Region:             data.Region,
		District:           data.District,
		OperatingHours:     data.OperatingHours,
		DeliveryAreas:      data.DeliveryAreas,
		VerificationStatus: data.VerificationStatus.String(),
		Rating:             data.Rating,
		ReviewsCount:       data.ReviewsCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
