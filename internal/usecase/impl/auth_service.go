package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	recorder     *activityRecorder
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		recorder:     newActivityRecorder(publisher, logger),
		logger:       logger,
	}
}

// hashToken derives the storage hash for a refresh token string.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Starting user registration", "email", input.Email, "role", input.Role)

	if !entity.RegisterableRoles.Contains(input.Role) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role is not open for registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var (
		registeredUser *entity.User
		auditRow       *entity.ActivityLog
	)

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		credRepo := repoFactory.NewCredentialRepository()

		// 1. Check if a credential with this email already exists.
		_, err := credRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to find credential")
		}

		// 2. Create the User entity.
		language := input.PreferredLanguage
		if !language.IsValid() {
			language = entity.LanguageSwahili
		}
		newUser := &entity.User{
			ID:                uuid.New(),
			FirstName:         input.FirstName,
			LastName:          input.LastName,
			Email:             input.Email,
			Phone:             input.Phone,
			Role:              input.Role,
			Status:            entity.UserStatusActive,
			Region:            input.Region,
			District:          input.District,
			Ward:              input.Ward,
			PreferredLanguage: language,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the credential.
		newCredential := &entity.Credential{
			ID:           uuid.New(),
			UserID:       newUser.ID,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := credRepo.Create(ctx, newCredential); err != nil {
			return errors.WithStack(err)
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, entity.Actor{ID: newUser.ID, Role: newUser.Role},
			entity.ActionUserRegistered, "user", newUser.ID,
			"registered as "+newUser.Role.String(), nil)
		if err != nil {
			return err
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		logger.Error("Failed to execute user registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.recorder.publish(ctx, auditRow)
	logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Starting user login", "email", input.Email)

	var (
		loggedInUser                    *entity.User
		accessToken, refreshTokenString string
		auditRow                        *entity.ActivityLog
	)

	// Login involves multiple steps, so we use a transaction to ensure atomicity,
	// especially for creating the new refresh token.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()
		userRepo := repoFactory.NewUserRepository()

		// 1. Find the credential.
		credential, err := credRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			// This includes ErrCredentialNotFound, which we treat as an invalid credential case.
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 3. Fetch the user and verify the account is usable.
		user, err := userRepo.FindByID(ctx, credential.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}
		if !user.IsActive() {
			return domainerrors.ErrUserInactive.WrapMessage("login failed")
		}

		// 4. Generate new tokens.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, user.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 5. Securely store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := repoFactory.NewRefreshTokenRepository().Create(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		if err := userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to stamp last login")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, entity.Actor{ID: user.ID, Role: user.Role},
			entity.ActionUserLoggedIn, "user", user.ID, "logged in", nil)
		if err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}

	srv.recorder.publish(ctx, auditRow)
	logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()
		userRepo := repoFactory.NewUserRepository()

		// 1. Verify the refresh token exists in the database.
		oldHash := hashToken(input.RefreshToken)
		stored, err := tokenRepo.FindByHash(ctx, oldHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found")
		}
		if stored.Expired(time.Now()) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		}

		// 2. Fetch the user and verify the account is still usable.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive() {
			return domainerrors.ErrUserInactive.WrapMessage("token refresh rejected")
		}

		// 3. Generate new tokens.
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, user.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// 4. Store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.Create(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// 5. Delete the old refresh token.
		if err := tokenRepo.DeleteByHash(ctx, oldHash); err != nil {
			// Log the error but don't fail the transaction, as the user has a new valid token.
			logger.Warn("Failed to delete old refresh token", "error", err)
		}

		return nil
	})

	if err != nil {
		logger.Warn("Failed to execute refresh token transaction", "error", err)

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		logger.Warn("Logout with invalid token", "error", err)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRefreshTokenRepository().DeleteByHash(ctx, hashToken(input.RefreshToken)); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		logger.Error("Failed to execute logout transaction", "error", err)

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	logger.Debug("Successfully logged out")

	return nil
}

// ChangePassword replaces the actor's password and ends their other sessions.
func (srv *authService) ChangePassword(ctx context.Context, actor entity.Actor, input *usecase.ChangePasswordInput) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Starting password change", "userID", actor.ID)

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var auditRow *entity.ActivityLog

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()

		credential, err := credRepo.FindByUserID(ctx, actor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find credential")
		}
		if !srv.hasher.Check(input.CurrentPassword, credential.PasswordHash) {
			return domainerrors.ErrPasswordMismatch.WrapMessage("password change rejected")
		}

		if err := credRepo.UpdatePasswordHash(ctx, actor.ID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		// Changing the password invalidates every open session.
		if err := repoFactory.NewRefreshTokenRepository().DeleteByUserID(ctx, actor.ID); err != nil {
			return errors.Wrap(err, "failed to end sessions")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionPasswordChanged, "user", actor.ID, "changed password", nil)

		return err
	})

	if err != nil {
		logger.Warn("Password change failed", "userID", actor.ID, "error", err.Error())

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}
