package impl

import (
	"context"
	"strings"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewUserService(
		txManager,
		userRepo,
		publisher,
		newDiscardLogger(),
	)

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func profileUser() *entity.User {
	return &entity.User{
		ID:                uuid.New(),
		FirstName:         "Neema",
		LastName:          "Mwakasege",
		Email:             "neema@example.com",
		Phone:             "+255700111222",
		Role:              entity.RoleFarmer,
		Status:            entity.UserStatusActive,
		Region:            "Mbeya",
		District:          "Mbeya Urban",
		PreferredLanguage: entity.LanguageSwahili,
	}
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, entity.Actor{ID: user.ID, Role: user.Role})

	require.NoError(t, err)
	assert.Equal(t, "Neema Mwakasege", got.FullName())
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.userRepo.On("FindByID", ctx, actorID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, entity.Actor{ID: actorID, Role: entity.RoleFarmer})

	require.Error(t, err)
	assertAppErrorCode(t, err, "USER_NOT_FOUND")
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	actor := entity.Actor{ID: user.ID, Role: user.Role}

	region := "Songwe"
	language := entity.LanguageEnglish

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionUserUpdated && log.ActorID == actor.ID
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, actor, user.ID, &usecase.UpdateProfileInput{
		Region:            &region,
		PreferredLanguage: &language,
	})

	require.NoError(t, err)
	assert.Equal(t, "Songwe", updated.Region)
	assert.Equal(t, entity.LanguageEnglish, updated.PreferredLanguage)
	// Untouched fields keep their values.
	assert.Equal(t, "Neema", updated.FirstName)
	assert.Equal(t, "Mbeya Urban", updated.District)
}

func TestUserService_UpdateProfile_InvalidLanguageIgnored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	actor := entity.Actor{ID: user.ID, Role: user.Role}

	language := entity.Language("fr")

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, actor, user.ID, &usecase.UpdateProfileInput{
		PreferredLanguage: &language,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LanguageSwahili, updated.PreferredLanguage)
}

func TestUserService_UpdateProfile_StrangerForbidden(t *testing.T) {
	fx := createTestUserService(t)

	name := "Mallory"

	_, err := fx.service.UpdateProfile(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer},
		uuid.New(),
		&usecase.UpdateProfileInput{FirstName: &name})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestUserService_DeleteAccount_AnonymizesAndEndsSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	actor := entity.Actor{ID: user.ID, Role: user.Role}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewRefreshTokenRepository").Return(repository.RefreshTokenRepository(mockTokenRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.FirstName == "Deleted" &&
			u.Status == entity.UserStatusInactive &&
			strings.HasSuffix(u.Email, "@deleted.invalid")
	})).Return(nil)
	mockTokenRepo.On("DeleteByUserID", ctx, user.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionUserDeleted
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, actor, user.ID))
}

func TestUserService_DeleteAccount_AdminCanDeleteOthers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewRefreshTokenRepository").Return(repository.RefreshTokenRepository(mockTokenRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)
	mockTokenRepo.On("DeleteByUserID", ctx, user.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, admin, user.ID))
}

func TestUserService_ListUsers_NotAdmin(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.ListUsers(context.Background(),
		entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer},
		&usecase.ListUsersInput{})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.userRepo.On("List", ctx, mock.MatchedBy(func(filter repository.UserListFilter) bool {
		return filter.Region == "Dodoma" && filter.Limit == usecase.DefaultPageSize && filter.Offset == 0
	})).Return([]*entity.User{profileUser()}, int64(1), nil)

	output, err := fx.service.ListUsers(ctx, admin, &usecase.ListUsersInput{Region: "Dodoma"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Len(t, output.Users, 1)
}

func TestUserService_UpdateUserStatus_SuspendEndsSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewRefreshTokenRepository").Return(repository.RefreshTokenRepository(mockTokenRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)
	mockTokenRepo.On("DeleteByUserID", ctx, user.ID).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.MatchedBy(func(log *entity.ActivityLog) bool {
		return log.Action == entity.ActionUserStatusChanged &&
			log.Metadata["old_status"] == "active" &&
			log.Metadata["new_status"] == "suspended"
	})).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	updated, err := fx.service.UpdateUserStatus(ctx, admin, &usecase.UpdateUserStatusInput{
		UserID: user.ID,
		Status: entity.UserStatusSuspended,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, updated.Status)
}

func TestUserService_UpdateUserStatus_ReactivateSkipsSessionPurge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := profileUser()
	user.Status = entity.UserStatusSuspended
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewUserRepository").Return(repository.UserRepository(mockUserRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("Update", ctx, user).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	updated, err := fx.service.UpdateUserStatus(ctx, admin, &usecase.UpdateUserStatusInput{
		UserID: user.ID,
		Status: entity.UserStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, updated.Status)
}

func TestUserService_UpdateUserStatus_UnknownStatus(t *testing.T) {
	fx := createTestUserService(t)

	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.UpdateUserStatus(context.Background(), admin, &usecase.UpdateUserStatusInput{
		UserID: uuid.New(),
		Status: entity.UserStatus("banned"),
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}
