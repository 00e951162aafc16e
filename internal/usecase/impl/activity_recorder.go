// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// activityRecorder appends audit rows and mirrors them to the event bus.
// The row write shares the caller's transaction; publishing happens after
// commit and never fails the operation.
type activityRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newActivityRecorder(publisher service.EventPublisher, logger *slog.Logger) *activityRecorder {
	return &activityRecorder{
		publisher: publisher,
		logger:    logger,
	}
}

// record appends an audit row through the transaction-bound factory. The row
// commits or rolls back with the mutation it describes.
func (r *activityRecorder) record(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	actor entity.Actor,
	action, resourceType string,
	resourceID uuid.UUID,
	description string,
	metadata map[string]string,
) (*entity.ActivityLog, error) {
	log := &entity.ActivityLog{
		ID:           uuid.New(),
		ActorID:      actor.ID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Description:  description,
		Metadata:     metadata,
		IPAddress:    deliverycontext.GetClientIP(ctx),
		UserAgent:    deliverycontext.GetUserAgent(ctx),
		CreatedAt:    time.Now(),
	}

	if err := repoFactory.NewActivityLogRepository().Create(ctx, log); err != nil {
		return nil, errors.Wrap(err, "failed to append activity log")
	}

	return log, nil
}

// publish mirrors a committed audit row to the event bus. Failures are
// logged and swallowed; the audit table remains the source of truth.
func (r *activityRecorder) publish(ctx context.Context, log *entity.ActivityLog) {
	if log == nil || r.publisher == nil {
		return
	}

	event := &service.ActivityEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:      log.ActorID.String(),
		Action:       log.Action,
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID.String(),
		Description:  log.Description,
		Metadata:     log.Metadata,
		OccurredAt:   log.CreatedAt.Format(time.RFC3339),
	}

	if err := r.publisher.PublishActivityEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
		logger.Warn("Failed to publish activity event", "action", log.Action, "error", err)
	}
}
