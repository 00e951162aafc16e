package impl

import (
	"context"
	"testing"
	"time"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	mockRepo "adinas/internal/mocks/repository"
	mockSvc "adinas/internal/mocks/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAuthService(
		txManager,
		hasher,
		tokenService,
		publisher,
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func activeUser() *entity.User {
	return &entity.User{
		ID:                uuid.New(),
		FirstName:         "Amina",
		LastName:          "Juma",
		Email:             "amina@example.com",
		Role:              entity.RoleFarmer,
		Status:            entity.UserStatusActive,
		Region:            "Morogoro",
		PreferredLanguage: entity.LanguageSwahili,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName:         "Amina",
		LastName:          "Juma",
		Email:             "amina@example.com",
		Password:          "Password123!",
		Role:              entity.RoleFarmer,
		Region:            "Morogoro",
		PreferredLanguage: entity.LanguageSwahili,
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockCredRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrCredentialNotFound)
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == input.Email && u.Status == entity.UserStatusActive && u.Role == entity.RoleFarmer
	})).Return(nil)
	mockCredRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.Email == input.Email && c.PasswordHash == "hashed_password"
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionUserRegistered
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "amina@example.com",
		Password: "Password123!",
		Role:     entity.RoleFarmer,
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))

	mockCredRepo.On("FindByEmail", ctx, input.Email).Return(&entity.Credential{}, nil)

	fx.txManager.Passthrough(mockFactory)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "root@example.com",
		Password: "Password123!",
		Role:     entity.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser()
	credential := &entity.Credential{
		ID:           uuid.New(),
		UserID:       user.ID,
		Email:        user.Email,
		PasswordHash: "stored_hash",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewRefreshTokenRepository").Return(repository.RefreshTokenRepository(mockTokenRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockCredRepo.On("FindByEmail", ctx, user.Email).Return(credential, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", user.ID, "farmer").Return("access_token", "refresh_token", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	mockTokenRepo.On("Create", ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
		return rt.UserID == user.ID && rt.TokenHash != "refresh_token" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)
	mockUserRepo.On("UpdateLastLogin", ctx, user.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionUserLoggedIn
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	credential := &entity.Credential{UserID: uuid.New(), PasswordHash: "stored_hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))

	mockCredRepo.On("FindByEmail", ctx, "amina@example.com").Return(credential, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	fx.txManager.Passthrough(mockFactory)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "amina@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))

	mockCredRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_SuspendedUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser()
	user.Status = entity.UserStatusSuspended
	credential := &entity.Credential{UserID: user.ID, PasswordHash: "stored_hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))

	mockCredRepo.On("FindByEmail", ctx, user.Email).Return(credential, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.Error(t, err)
	assertAppErrorCode(t, err, "USER_INACTIVE")
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.On("ValidateToken", "garbage").Return(nil, assert.AnError)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "REFRESH_TOKEN_INVALID")
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	credential := &entity.Credential{UserID: actor.ID, PasswordHash: "old_hash"}

	fx.hasher.On("Hash", "NewPassword123!").Return("new_hash", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockFactory.On("NewRefreshTokenRepository").Return(repository.RefreshTokenRepository(mockTokenRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockCredRepo.On("FindByUserID", ctx, actor.ID).Return(credential, nil)
	fx.hasher.On("Check", "OldPassword123!", "old_hash").Return(true)
	mockCredRepo.On("UpdatePasswordHash", ctx, actor.ID, "new_hash").Return(nil)
	mockTokenRepo.On("DeleteByUserID", ctx, actor.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionPasswordChanged
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{
		CurrentPassword: "OldPassword123!",
		NewPassword:     "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}
	credential := &entity.Credential{UserID: actor.ID, PasswordHash: "old_hash"}

	fx.hasher.On("Hash", "NewPassword123!").Return("new_hash", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)

	mockFactory.On("NewCredentialRepository").Return(repository.CredentialRepository(mockCredRepo))
	mockCredRepo.On("FindByUserID", ctx, actor.ID).Return(credential, nil)
	fx.hasher.On("Check", "wrong", "old_hash").Return(false)

	fx.txManager.Passthrough(mockFactory)

	err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "PASSWORD_MISMATCH")
}
