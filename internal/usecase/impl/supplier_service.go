package impl

import (
	"context"
	"log/slog"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager    repository.TransactionManager
	supplierRepo repository.SupplierRepository
	notifier     usecase.NotificationUsecase
	recorder     *activityRecorder
	logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(
	txManager repository.TransactionManager,
	supplierRepo repository.SupplierRepository,
	notifier usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    txManager,
		supplierRepo: supplierRepo,
		notifier:     notifier,
		recorder:     newActivityRecorder(publisher, logger),
		logger:       logger,
	}
}

// CreateProfile opens a supplier profile for the actor.
func (srv *supplierService) CreateProfile(ctx context.Context, actor entity.Actor, input *usecase.CreateSupplierInput) (*entity.Supplier, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Creating supplier profile", "userID", actor.ID)

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown supplier type")
	}

	var (
		created  *entity.Supplier
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.NewSupplierRepository()

		// One profile per user. The unique index backs this check against
		// concurrent requests.
		_, err := supplierRepo.FindByUserID(ctx, actor.ID)
		if err == nil {
			return domainerrors.ErrSupplierAlreadyExists.WrapMessage("supplier creation failed")
		}
		if !errors.Is(err, repository.ErrSupplierNotFound) {
			return errors.Wrap(err, "failed to find supplier")
		}

		supplier := &entity.Supplier{
			ID:                 uuid.New(),
			UserID:             actor.ID,
			CompanyName:        input.CompanyName,
			BusinessLicense:    input.BusinessLicense,
			Type:               input.Type,
			Description:        input.Description,
			Address:            input.Address,
			Region:             input.Region,
			District:           input.District,
			OperatingHours:     input.OperatingHours,
			DeliveryAreas:      input.DeliveryAreas,
			VerificationStatus: entity.VerificationPending,
		}
		if err := supplierRepo.Create(ctx, supplier); err != nil {
			if errors.Is(err, repository.ErrDuplicateSupplier) {
				return domainerrors.ErrSupplierAlreadyExists.WrapMessage("supplier creation failed")
			}

			return errors.Wrap(err, "failed to create supplier")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionSupplierCreated, "supplier", supplier.ID,
			"opened supplier profile "+supplier.CompanyName, nil)
		if err != nil {
			return err
		}
		created = supplier

		return nil
	})

	if err != nil {
		logger.Warn("Supplier creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute supplier creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// GetByID retrieves a supplier profile.
func (srv *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WrapMessage("supplier lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

// GetMine retrieves the actor's own supplier profile.
func (srv *supplierService) GetMine(ctx context.Context, actor entity.Actor) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WrapMessage("supplier lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

// List retrieves supplier profiles matching the filter.
func (srv *supplierService) List(ctx context.Context, input *usecase.ListSuppliersInput) (*usecase.SupplierListOutput, error) {
	suppliers, total, err := srv.supplierRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return &usecase.SupplierListOutput{Suppliers: suppliers, Total: total}, nil
}

// Update modifies a supplier profile.
func (srv *supplierService) Update(ctx context.Context, actor entity.Actor, supplierID uuid.UUID, input *usecase.UpdateSupplierInput) (*entity.Supplier, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		updated  *entity.Supplier
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.NewSupplierRepository()

		supplier, err := supplierRepo.FindByID(ctx, supplierID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound.WrapMessage("supplier update failed")
			}

			return errors.Wrap(err, "failed to find supplier")
		}
		if !actor.CanMutate(supplier.UserID) {
			return domainerrors.ErrForbidden.WrapMessage("supplier update rejected")
		}

		if input.CompanyName != nil {
			supplier.CompanyName = *input.CompanyName
		}
		if input.Description != nil {
			supplier.Description = *input.Description
		}
		if input.Address != nil {
			supplier.Address = *input.Address
		}
		if input.Region != nil {
			supplier.Region = *input.Region
		}
		if input.District != nil {
			supplier.District = *input.District
		}
		if input.OperatingHours != nil {
			supplier.OperatingHours = input.OperatingHours
		}
		if input.DeliveryAreas != nil {
			supplier.DeliveryAreas = input.DeliveryAreas
		}

		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionSupplierUpdated, "supplier", supplier.ID,
			"updated supplier profile", nil)
		if err != nil {
			return err
		}
		updated = supplier

		return nil
	})

	if err != nil {
		logger.Warn("Supplier update failed", "supplierID", supplierID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute supplier update transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}

// Verify moves a pending profile to verified. Admin only.
func (srv *supplierService) Verify(ctx context.Context, actor entity.Actor, supplierID uuid.UUID) (*entity.Supplier, error) {
	return srv.decide(ctx, actor, supplierID, entity.VerificationVerified, "")
}

// Reject moves a pending profile to rejected with a reason. Admin only.
func (srv *supplierService) Reject(ctx context.Context, actor entity.Actor, input *usecase.RejectSupplierInput) (*entity.Supplier, error) {
	if input.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason is required")
	}

	return srv.decide(ctx, actor, input.SupplierID, entity.VerificationRejected, input.Reason)
}

// decide applies a one-way verification decision.
func (srv *supplierService) decide(ctx context.Context, actor entity.Actor, supplierID uuid.UUID, target entity.VerificationStatus, reason string) (*entity.Supplier, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Deciding supplier verification", "supplierID", supplierID, "target", target)

	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("verification decision rejected")
	}

	var (
		decided  *entity.Supplier
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.NewSupplierRepository()

		supplier, err := supplierRepo.FindByID(ctx, supplierID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound.WrapMessage("verification decision failed")
			}

			return errors.Wrap(err, "failed to find supplier")
		}

		// Decisions are final: only pending profiles can move.
		if !supplier.VerificationStatus.CanTransitionTo(target) {
			return domainerrors.ErrVerificationConflict.WrapMessage("verification decision failed")
		}

		supplier.VerificationStatus = target
		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier")
		}

		action := entity.ActionSupplierVerified
		description := "verified supplier " + supplier.CompanyName
		var metadata map[string]string
		if target == entity.VerificationRejected {
			action = entity.ActionSupplierRejected
			description = "rejected supplier " + supplier.CompanyName + ": " + reason
			metadata = map[string]string{"reason": reason}
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			action, "supplier", supplier.ID, description, metadata)
		if err != nil {
			return err
		}
		decided = supplier

		return nil
	})

	if err != nil {
		logger.Warn("Verification decision failed", "supplierID", supplierID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute verification decision transaction")
	}

	srv.recorder.publish(ctx, auditRow)
	srv.notifyDecision(ctx, decided, reason)

	return decided, nil
}

// notifyDecision tells the supplier's owner about the outcome. Best effort.
func (srv *supplierService) notifyDecision(ctx context.Context, supplier *entity.Supplier, reason string) {
	if srv.notifier == nil {
		return
	}

	title := "Supplier profile verified"
	body := "Your supplier profile " + supplier.CompanyName + " has been verified."
	if supplier.VerificationStatus == entity.VerificationRejected {
		title = "Supplier profile rejected"
		body = "Your supplier profile " + supplier.CompanyName + " was rejected: " + reason
	}

	err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		UserID: supplier.UserID,
		Type:   entity.NotificationTypeVerification,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"supplier_id": supplier.ID.String()},
	})
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
		logger.Warn("Failed to notify supplier of verification decision", "supplierID", supplier.ID, "error", err)
	}
}
