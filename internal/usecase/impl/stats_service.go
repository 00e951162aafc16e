package impl

import (
	"context"
	"log/slog"

	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/usecase"

	"github.com/pkg/errors"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	statsRepo repository.StatsRepository,
	logger *slog.Logger,
) usecase.StatsUsecase {
	return &statsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Platform retrieves row counts across the platform's main tables. Admin only.
func (srv *statsService) Platform(ctx context.Context, actor entity.Actor) (*repository.PlatformStats, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("platform stats access rejected")
	}

	stats, err := srv.statsRepo.Platform(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform stats")
	}

	return stats, nil
}
