package postgres

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	"adinas/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// Platform retrieves the current counts across all tracked tables.
func (repo *statsRepository) Platform(ctx context.Context) (*repository.PlatformStats, error) {
	stats := &repository.PlatformStats{}
	db := repo.db.WithContext(ctx)

	counts := []struct {
		name  string
		query *gorm.DB
		dest  *int64
	}{
		{"users", db.Model(&model.UserModel{}), &stats.TotalUsers},
		{"active users", db.Model(&model.UserModel{}).Where("status = ?", entity.UserStatusActive), &stats.ActiveUsers},
		{"suppliers", db.Model(&model.SupplierModel{}), &stats.TotalSuppliers},
		{"verified suppliers", db.Model(&model.SupplierModel{}).Where("verification_status = ?", entity.VerificationVerified), &stats.VerifiedSuppliers},
		{"pending suppliers", db.Model(&model.SupplierModel{}).Where("verification_status = ?", entity.VerificationPending), &stats.PendingSuppliers},
		{"products", db.Model(&model.ProductModel{}), &stats.TotalProducts},
		{"active products", db.Model(&model.ProductModel{}).Where("status = ?", entity.ProductStatusActive), &stats.ActiveProducts},
		{"published content", db.Model(&model.ContentModel{}).Where("status = ?", entity.ContentStatusPublished), &stats.PublishedContent},
		{"consultations", db.Model(&model.ConsultationModel{}), &stats.TotalConsultations},
		{"pending consultations", db.Model(&model.ConsultationModel{}).Where("status = ?", entity.ConsultationStatusPending), &stats.PendingConsultations},
		{"reviews", db.Model(&model.ReviewModel{}), &stats.TotalReviews},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", c.name)
		}
	}

	return stats, nil
}
