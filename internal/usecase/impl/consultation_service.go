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

// consultationService implements the ConsultationUsecase interface.
type consultationService struct {
	txManager        repository.TransactionManager
	consultationRepo repository.ConsultationRepository
	notifier         usecase.NotificationUsecase
	recorder         *activityRecorder
	logger           *slog.Logger
}

// NewConsultationService is the constructor for consultationService.
func NewConsultationService(
	txManager repository.TransactionManager,
	consultationRepo repository.ConsultationRepository,
	notifier usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ConsultationUsecase {
	return &consultationService{
		txManager:        txManager,
		consultationRepo: consultationRepo,
		notifier:         notifier,
		recorder:         newActivityRecorder(publisher, logger),
		logger:           logger,
	}
}

// officerRoles may work consultation requests.
var officerRoles = entity.Roles{entity.RoleExtensionOfficer, entity.RoleAdmin}

// Ask opens a consultation for the acting farmer.
func (srv *consultationService) Ask(ctx context.Context, actor entity.Actor, input *usecase.AskConsultationInput) (*entity.Consultation, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Opening consultation", "userID", actor.ID, "subject", input.Subject)

	var (
		created  *entity.Consultation
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consultation := &entity.Consultation{
			ID:        uuid.New(),
			FarmerID:  actor.ID,
			Subject:   input.Subject,
			Question:  input.Question,
			CropType:  input.CropType,
			Category:  input.Category,
			Status:    entity.ConsultationStatusPending,
			ImageURLs: input.ImageURLs,
		}
		if err := repoFactory.NewConsultationRepository().Create(ctx, consultation); err != nil {
			return errors.Wrap(err, "failed to create consultation")
		}

		var err error
		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionConsultationAsked, "consultation", consultation.ID,
			"asked about "+consultation.Subject, nil)
		if err != nil {
			return err
		}
		created = consultation

		return nil
	})

	if err != nil {
		logger.Warn("Consultation creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute consultation creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// GetByID retrieves a consultation under its visibility rules.
func (srv *consultationService) GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Consultation, error) {
	consultation, err := srv.consultationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConsultationNotFound) {
			return nil, domainerrors.ErrConsultationNotFound.WrapMessage("consultation lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find consultation")
	}

	if !srv.canView(actor, consultation) {
		return nil, domainerrors.ErrConsultationNotFound.WrapMessage("consultation lookup failed")
	}

	return consultation, nil
}

// canView checks consultation visibility for the actor.
func (srv *consultationService) canView(actor entity.Actor, consultation *entity.Consultation) bool {
	if actor.IsAdmin() || actor.ID == consultation.FarmerID {
		return true
	}
	if consultation.OfficerID != nil && *consultation.OfficerID == actor.ID {
		return true
	}
	// Pending requests are an open queue for officers.
	return consultation.Status == entity.ConsultationStatusPending && actor.HasRole(entity.RoleExtensionOfficer)
}

// ListMine retrieves the actor's consultations.
func (srv *consultationService) ListMine(ctx context.Context, actor entity.Actor, input *usecase.ListConsultationsInput) (*usecase.ConsultationListOutput, error) {
	filter := input.Filter()
	if actor.HasRole(entity.RoleExtensionOfficer) {
		filter.OfficerID = actor.ID
	} else {
		filter.FarmerID = actor.ID
	}

	consultations, total, err := srv.consultationRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consultations")
	}

	return &usecase.ConsultationListOutput{Consultations: consultations, Total: total}, nil
}

// ListPending retrieves unassigned consultations for officers to pick up.
func (srv *consultationService) ListPending(ctx context.Context, actor entity.Actor, input *usecase.ListConsultationsInput) (*usecase.ConsultationListOutput, error) {
	if !officerRoles.Contains(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("pending queue rejected")
	}

	filter := input.Filter()
	filter.Status = entity.ConsultationStatusPending

	consultations, total, err := srv.consultationRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending consultations")
	}

	return &usecase.ConsultationListOutput{Consultations: consultations, Total: total}, nil
}

// Accept assigns a pending consultation to the acting officer.
func (srv *consultationService) Accept(ctx context.Context, actor entity.Actor, consultationID uuid.UUID) (*entity.Consultation, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Accepting consultation", "consultationID", consultationID, "officerID", actor.ID)

	if !officerRoles.Contains(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("consultation accept rejected")
	}

	var (
		accepted *entity.Consultation
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consultationRepo := repoFactory.NewConsultationRepository()

		consultation, err := consultationRepo.FindByID(ctx, consultationID)
		if err != nil {
			if errors.Is(err, repository.ErrConsultationNotFound) {
				return domainerrors.ErrConsultationNotFound.WrapMessage("consultation accept failed")
			}

			return errors.Wrap(err, "failed to find consultation")
		}
		if !consultation.Status.CanTransitionTo(entity.ConsultationStatusAccepted) {
			return domainerrors.ErrConsultationClosed.WrapMessage("consultation accept failed")
		}

		now := time.Now()
		officerID := actor.ID
		consultation.OfficerID = &officerID
		consultation.Status = entity.ConsultationStatusAccepted
		consultation.AcceptedAt = &now

		if err := consultationRepo.Update(ctx, consultation); err != nil {
			return errors.Wrap(err, "failed to update consultation")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionConsultationTaken, "consultation", consultation.ID,
			"accepted consultation "+consultation.Subject, nil)
		if err != nil {
			return err
		}
		accepted = consultation

		return nil
	})

	if err != nil {
		logger.Warn("Consultation accept failed", "consultationID", consultationID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute consultation accept transaction")
	}

	srv.recorder.publish(ctx, auditRow)
	srv.notifyFarmer(ctx, accepted, "Consultation accepted",
		"An extension officer is now working on: "+accepted.Subject)

	return accepted, nil
}

// Complete records the answer and closes the consultation.
func (srv *consultationService) Complete(ctx context.Context, actor entity.Actor, input *usecase.CompleteConsultationInput) (*entity.Consultation, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Completing consultation", "consultationID", input.ConsultationID)

	if input.Answer == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("answer is required")
	}

	var (
		completed *entity.Consultation
		auditRow  *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consultationRepo := repoFactory.NewConsultationRepository()

		consultation, err := consultationRepo.FindByID(ctx, input.ConsultationID)
		if err != nil {
			if errors.Is(err, repository.ErrConsultationNotFound) {
				return domainerrors.ErrConsultationNotFound.WrapMessage("consultation completion failed")
			}

			return errors.Wrap(err, "failed to find consultation")
		}

		assigned := consultation.OfficerID != nil && *consultation.OfficerID == actor.ID
		if !assigned && !actor.IsAdmin() {
			return domainerrors.ErrForbidden.WrapMessage("consultation completion rejected")
		}
		if !consultation.Status.CanTransitionTo(entity.ConsultationStatusCompleted) {
			return domainerrors.ErrConsultationClosed.WrapMessage("consultation completion failed")
		}

		now := time.Now()
		consultation.Answer = input.Answer
		consultation.Status = entity.ConsultationStatusCompleted
		consultation.CompletedAt = &now

		if err := consultationRepo.Update(ctx, consultation); err != nil {
			return errors.Wrap(err, "failed to update consultation")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionConsultationClosed, "consultation", consultation.ID,
			"answered consultation "+consultation.Subject, nil)
		if err != nil {
			return err
		}
		completed = consultation

		return nil
	})

	if err != nil {
		logger.Warn("Consultation completion failed", "consultationID", input.ConsultationID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute consultation completion transaction")
	}

	srv.recorder.publish(ctx, auditRow)
	srv.notifyFarmer(ctx, completed, "Consultation answered",
		"Your question has been answered: "+completed.Subject)

	return completed, nil
}

// Cancel withdraws an open consultation.
func (srv *consultationService) Cancel(ctx context.Context, actor entity.Actor, consultationID uuid.UUID) (*entity.Consultation, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		cancelled *entity.Consultation
		auditRow  *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consultationRepo := repoFactory.NewConsultationRepository()

		consultation, err := consultationRepo.FindByID(ctx, consultationID)
		if err != nil {
			if errors.Is(err, repository.ErrConsultationNotFound) {
				return domainerrors.ErrConsultationNotFound.WrapMessage("consultation cancellation failed")
			}

			return errors.Wrap(err, "failed to find consultation")
		}
		if !actor.CanMutate(consultation.FarmerID) {
			return domainerrors.ErrForbidden.WrapMessage("consultation cancellation rejected")
		}
		if !consultation.Status.CanTransitionTo(entity.ConsultationStatusCancelled) {
			return domainerrors.ErrConsultationClosed.WrapMessage("consultation cancellation failed")
		}

		consultation.Status = entity.ConsultationStatusCancelled
		if err := consultationRepo.Update(ctx, consultation); err != nil {
			return errors.Wrap(err, "failed to update consultation")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionConsultationCancelled, "consultation", consultation.ID,
			"withdrew consultation "+consultation.Subject, nil)
		if err != nil {
			return err
		}
		cancelled = consultation

		return nil
	})

	if err != nil {
		logger.Warn("Consultation cancellation failed", "consultationID", consultationID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute consultation cancellation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return cancelled, nil
}

// notifyFarmer tells the asking farmer about a state change. Best effort.
func (srv *consultationService) notifyFarmer(ctx context.Context, consultation *entity.Consultation, title, body string) {
	if srv.notifier == nil {
		return
	}

	err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		UserID: consultation.FarmerID,
		Type:   entity.NotificationTypeConsultation,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"consultation_id": consultation.ID.String()},
	})
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
		logger.Warn("Failed to notify farmer", "consultationID", consultation.ID, "error", err)
	}
}
