package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
)

// StatsUsecase defines the interface for platform-wide aggregate reporting.
type StatsUsecase interface {
	// Platform retrieves row counts across the platform's main tables. Admin only.
	Platform(ctx context.Context, actor entity.Actor) (*repository.PlatformStats, error)
}
