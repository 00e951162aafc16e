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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	recorder  *activityRecorder
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		recorder:  newActivityRecorder(publisher, logger),
		logger:    logger,
	}
}

// GetProfile retrieves the actor's own profile.
func (srv *userService) GetProfile(ctx context.Context, actor entity.Actor) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies partial updates to the target user's profile.
func (srv *userService) UpdateProfile(ctx context.Context, actor entity.Actor, targetID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if !actor.CanMutate(targetID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("profile update rejected")
	}

	var (
		updated  *entity.User
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		applyProfileUpdates(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionUserUpdated, "user", user.ID, "updated profile", nil)
		if err != nil {
			return err
		}
		updated = user

		return nil
	})

	if err != nil {
		logger.Warn("Profile update failed", "targetID", targetID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}

// applyProfileUpdates copies the set fields onto the user.
func applyProfileUpdates(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Region != nil {
		user.Region = *input.Region
	}
	if input.District != nil {
		user.District = *input.District
	}
	if input.Ward != nil {
		user.Ward = *input.Ward
	}
	if input.PreferredLanguage != nil && input.PreferredLanguage.IsValid() {
		user.PreferredLanguage = *input.PreferredLanguage
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}
}

// DeleteAccount anonymizes the target user and ends their sessions.
func (srv *userService) DeleteAccount(ctx context.Context, actor entity.Actor, targetID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Starting account deletion", "targetID", targetID)

	if !actor.CanMutate(targetID) {
		return domainerrors.ErrForbidden.WrapMessage("account deletion rejected")
	}

	var auditRow *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("account deletion failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// Rows referencing the user survive; the user row itself is scrubbed.
		user.Anonymize()
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to anonymize user")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteByUserID(ctx, targetID); err != nil {
			return errors.Wrap(err, "failed to end sessions")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionUserDeleted, "user", targetID, "deleted account", nil)

		return err
	})

	if err != nil {
		logger.Warn("Account deletion failed", "targetID", targetID, "error", err.Error())

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}

// ListUsers retrieves users matching the filter. Admin only.
func (srv *userService) ListUsers(ctx context.Context, actor entity.Actor, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("user listing rejected")
	}

	users, total, err := srv.userRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{Users: users, Total: total}, nil
}

// GetUser retrieves any user by ID. Admin only.
func (srv *userService) GetUser(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("user lookup rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUserStatus activates, deactivates, or suspends an account. Admin only.
func (srv *userService) UpdateUserStatus(ctx context.Context, actor entity.Actor, input *usecase.UpdateUserStatusInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("status change rejected")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown user status")
	}

	var (
		updated  *entity.User
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("status change failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		previous := user.Status
		user.Status = input.Status
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}

		// Suspended accounts lose every open session.
		if input.Status == entity.UserStatusSuspended {
			if err := repoFactory.NewRefreshTokenRepository().DeleteByUserID(ctx, user.ID); err != nil {
				return errors.Wrap(err, "failed to end sessions")
			}
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionUserStatusChanged, "user", user.ID,
			"changed status from "+previous.String()+" to "+input.Status.String(),
			map[string]string{"old_status": previous.String(), "new_status": input.Status.String()})
		if err != nil {
			return err
		}
		updated = user

		return nil
	})

	if err != nil {
		logger.Warn("Status change failed", "targetID", input.UserID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute status change transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}
