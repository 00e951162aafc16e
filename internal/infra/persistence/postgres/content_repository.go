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

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// Create persists a new content piece.
func (repo *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	contentM := fromContentDomain(content)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	// Update the entity with generated values
	content.ID = contentM.ID
	content.CreatedAt = contentM.CreatedAt
	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

// FindByID retrieves a content piece by its unique ID.
func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	var contentM model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by ID")
	}

	return toContentDomain(&contentM), nil
}

// FindBySlug retrieves a content piece by its URL slug.
func (repo *contentRepository) FindBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	var contentM model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by slug")
	}

	return toContentDomain(&contentM), nil
}

// List retrieves content pieces matching the filter along with the total count.
func (repo *contentRepository) List(ctx context.Context, filter repository.ContentListFilter) ([]*entity.Content, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ContentModel{})

	if filter.AuthorID != uuid.Nil {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Language != "" {
		query = query.Where("language = ?", string(filter.Language))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR tags::text ILIKE ?", pattern, pattern)
	}
	if filter.PublishedOnly {
		query = query.Where("status = ? AND published_at <= ?",
			entity.ContentStatusPublished.String(), time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count contents")
	}

	var contentModels []*model.ContentModel
	if err := query.
		Order("published_at DESC NULLS LAST, created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&contentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list contents")
	}

	contents := make([]*entity.Content, 0, len(contentModels))
	for _, contentM := range contentModels {
		contents = append(contents, toContentDomain(contentM))
	}

	return contents, total, nil
}

// Update modifies an existing content piece.
func (repo *contentRepository) Update(ctx context.Context, content *entity.Content) error {
	contentM := fromContentDomain(content)

	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ?", content.ID).
		Select("title", "slug", "body", "type", "status", "language", "category",
			"tags", "cover_image_url", "video_url", "published_at").
		Updates(contentM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// IncrementViews bumps the raw view counter without touching updated_at.
func (repo *contentRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment content views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// Delete removes a content piece by its ID.
func (repo *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// toContentDomain converts a GORM ContentModel to a domain Content entity.
func toContentDomain(data *model.ContentModel) *entity.Content {
	if data == nil {
		return nil
	}

	return &entity.Content{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Slug:          data.Slug,
		Body:          data.Body,
		Type:          entity.ContentType(data.Type),
		Status:        entity.ContentStatus(data.Status),
		Language:      entity.Language(data.Language),
		Category:      data.Category,
		Tags:          data.Tags,
		CoverImageURL: data.CoverImageURL,
		VideoURL:      data.VideoURL,
		ViewsCount:    data.ViewsCount,
		PublishedAt:   data.PublishedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromContentDomain converts a domain Content entity to a GORM ContentModel.
func fromContentDomain(data *entity.Content) *model.ContentModel {
	if data == nil {
		return nil
	}

	return &model.ContentModel{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Slug:          data.Slug,
		Body:          data.Body,
		Type:          string(data.Type),
		Status:        data.Status.String(),
		Language:      string(data.Language),
		Category:      data.Category,
		Tags:          data.Tags,
		CoverImageURL: data.CoverImageURL,
		VideoURL:      data.VideoURL,
		ViewsCount:    data.ViewsCount,
		PublishedAt:   data.PublishedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
