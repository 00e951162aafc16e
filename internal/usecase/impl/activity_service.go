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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityLogRepository
	logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(
	activityRepo repository.ActivityLogRepository,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List retrieves audit rows matching the filter, newest first. Admin only.
func (srv *activityService) List(ctx context.Context, actor entity.Actor, input *usecase.ListActivityInput) (*usecase.ActivityListOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("audit log access rejected")
	}

	logs, total, err := srv.activityRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	return &usecase.ActivityListOutput{Logs: logs, Total: total}, nil
}
