package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// farmRecordService implements the FarmRecordUsecase interface.
type farmRecordService struct {
	txManager  repository.TransactionManager
	recordRepo repository.FarmRecordRepository
	recorder   *activityRecorder
	logger     *slog.Logger
}

// NewFarmRecordService is the constructor for farmRecordService.
func NewFarmRecordService(
	txManager repository.TransactionManager,
	recordRepo repository.FarmRecordRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FarmRecordUsecase {
	return &farmRecordService{
		txManager:  txManager,
		recordRepo: recordRepo,
		recorder:   newActivityRecorder(publisher, logger),
		logger:     logger,
	}
}

// Create journals a new activity for the acting farmer.
func (srv *farmRecordService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateFarmRecordInput) (*entity.FarmRecord, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown farm record type")
	}

	recordDate := input.RecordDate
	if recordDate.IsZero() {
		recordDate = time.Now()
	}

	var (
		created  *entity.FarmRecord
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		record := &entity.FarmRecord{
			ID:          uuid.New(),
			FarmerID:    actor.ID,
			Type:        input.Type,
			CropType:    input.CropType,
			Description: input.Description,
			Quantity:    input.Quantity,
			Unit:        input.Unit,
			Amount:      input.Amount,
			RecordDate:  recordDate,
		}
		if err := repoFactory.NewFarmRecordRepository().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create farm record")
		}

		var err error
		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionFarmRecordCreated, "farm_record", record.ID,
			"journaled "+string(record.Type)+" activity", nil)
		if err != nil {
			return err
		}
		created = record

		return nil
	})

	if err != nil {
		logger.Warn("Farm record creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute farm record creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// GetByID retrieves a record for its owner or an admin.
func (srv *farmRecordService) GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.FarmRecord, error) {
	record, err := srv.recordRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFarmRecordNotFound) {
			return nil, domainerrors.ErrFarmRecordNotFound.WrapMessage("farm record lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find farm record")
	}
	// Private journal: hidden records read as missing.
	if !actor.CanMutate(record.FarmerID) {
		return nil, domainerrors.ErrFarmRecordNotFound.WrapMessage("farm record lookup failed")
	}

	return record, nil
}

// List retrieves the actor's records matching the filter.
func (srv *farmRecordService) List(ctx context.Context, actor entity.Actor, input *usecase.ListFarmRecordsInput) (*usecase.FarmRecordListOutput, error) {
	records, total, err := srv.recordRepo.List(ctx, input.Filter(actor.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farm records")
	}

	return &usecase.FarmRecordListOutput{Records: records, Total: total}, nil
}

// Summary aggregates the actor's expenses and sales over a period.
func (srv *farmRecordService) Summary(ctx context.Context, actor entity.Actor, from, to time.Time) (*repository.FarmRecordSummary, error) {
	summary, err := srv.recordRepo.Summarize(ctx, actor.ID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize farm records")
	}

	return summary, nil
}

// Update modifies a record.
func (srv *farmRecordService) Update(ctx context.Context, actor entity.Actor, recordID uuid.UUID, input *usecase.UpdateFarmRecordInput) (*entity.FarmRecord, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		updated  *entity.FarmRecord
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.NewFarmRecordRepository()

		record, err := recordRepo.FindByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, repository.ErrFarmRecordNotFound) {
				return domainerrors.ErrFarmRecordNotFound.WrapMessage("farm record update failed")
			}

			return errors.Wrap(err, "failed to find farm record")
		}
		if !actor.CanMutate(record.FarmerID) {
			return domainerrors.ErrForbidden.WrapMessage("farm record update rejected")
		}

		if input.Type != nil && input.Type.IsValid() {
			record.Type = *input.Type
		}
		if input.CropType != nil {
			record.CropType = *input.CropType
		}
		if input.Description != nil {
			record.Description = *input.Description
		}
		if input.Quantity != nil {
			record.Quantity = *input.Quantity
		}
		if input.Unit != nil {
			record.Unit = *input.Unit
		}
		if input.Amount != nil {
			record.Amount = *input.Amount
		}
		if input.RecordDate != nil {
			record.RecordDate = *input.RecordDate
		}

		if err := recordRepo.Update(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update farm record")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionFarmRecordUpdated, "farm_record", record.ID, "updated farm record", nil)
		if err != nil {
			return err
		}
		updated = record

		return nil
	})

	if err != nil {
		logger.Warn("Farm record update failed", "recordID", recordID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute farm record update transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}

// Delete removes a record.
func (srv *farmRecordService) Delete(ctx context.Context, actor entity.Actor, recordID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var auditRow *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.NewFarmRecordRepository()

		record, err := recordRepo.FindByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, repository.ErrFarmRecordNotFound) {
				return domainerrors.ErrFarmRecordNotFound.WrapMessage("farm record deletion failed")
			}

			return errors.Wrap(err, "failed to find farm record")
		}
		if !actor.CanMutate(record.FarmerID) {
			return domainerrors.ErrForbidden.WrapMessage("farm record deletion rejected")
		}

		if err := recordRepo.Delete(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to delete farm record")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionFarmRecordDeleted, "farm_record", record.ID, "removed farm record", nil)

		return err
	})

	if err != nil {
		logger.Warn("Farm record deletion failed", "recordID", recordID, "error", err.Error())

		return errors.Wrap(err, "failed to execute farm record deletion transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}
