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

// consultationRepository implements the repository.ConsultationRepository interface.
type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository is the constructor for consultationRepository.
func NewConsultationRepository(db *gorm.DB) repository.ConsultationRepository {
	return &consultationRepository{
		db: db,
	}
}

// Create persists a new consultation request.
func (repo *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	consultationM := fromConsultationDomain(consultation)

	if err := repo.db.WithContext(ctx).Create(consultationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid farmer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required consultation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consultation")
	}

	// Update the entity with generated values
	consultation.ID = consultationM.ID
	consultation.CreatedAt = consultationM.CreatedAt
	consultation.UpdatedAt = consultationM.UpdatedAt

	return nil
}

// FindByID retrieves a consultation by its unique ID.
func (repo *consultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	var consultationM model.ConsultationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&consultationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsultationNotFound
		}

		return nil, errors.Wrap(err, "failed to find consultation by ID")
	}

	return toConsultationDomain(&consultationM), nil
}

// List retrieves consultations matching the filter along with the total count.
func (repo *consultationRepository) List(ctx context.Context, filter repository.ConsultationListFilter) ([]*entity.Consultation, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ConsultationModel{})

	if filter.FarmerID != uuid.Nil {
		query = query.Where("farmer_id = ?", filter.FarmerID)
	}
	if filter.OfficerID != uuid.Nil {
		query = query.Where("officer_id = ?", filter.OfficerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count consultations")
	}

	var consultationModels []*model.ConsultationModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&consultationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list consultations")
	}

	consultations := make([]*entity.Consultation, 0, len(consultationModels))
	for _, consultationM := range consultationModels {
		consultations = append(consultations, toConsultationDomain(consultationM))
	}

	return consultations, total, nil
}

// Update modifies an existing consultation.
func (repo *consultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	consultationM := fromConsultationDomain(consultation)

	result := repo.db.WithContext(ctx).
		Model(&model.ConsultationModel{}).
		Where("id = ?", consultation.ID).
		Select("officer_id", "subject", "question", "answer", "crop_type",
			"category", "status", "image_urls", "accepted_at", "completed_at").
		Updates(consultationM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update consultation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConsultationNotFound
	}

	return nil
}

// toConsultationDomain converts a GORM ConsultationModel to a domain Consultation entity.
func toConsultationDomain(data *model.ConsultationModel) *entity.Consultation {
	if data == nil {
		return nil
	}

	return &entity.Consultation{
		ID:          data.ID,
		FarmerID:    data.FarmerID,
		OfficerID:   data.OfficerID,
		Subject:     data.Subject,
		Question:    data.Question,
		Answer:      data.Answer,
		CropType:    data.CropType,
		Category:    data.Category,
		Status:      entity.ConsultationStatus(data.Status),
		ImageURLs:   data.ImageURLs,
		AcceptedAt:  data.AcceptedAt,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromConsultationDomain converts a domain Consultation entity to a GORM ConsultationModel.
func fromConsultationDomain(data *entity.Consultation) *model.ConsultationModel {
	if data == nil {
		return nil
	}

	return &model.ConsultationModel{
		ID:          data.ID,
		FarmerID:    data.FarmerID,
		OfficerID:   data.OfficerID,
		Subject:     data.Subject,
		Question:    data.Question,
		Answer:      data.Answer,
		CropType:    data.CropType,
		Category:    data.Category,
		Status:      data.Status.String(),
		ImageURLs:   data.ImageURLs,
		AcceptedAt:  data.AcceptedAt,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
