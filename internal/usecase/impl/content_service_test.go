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

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service     usecase.ContentUsecase
	txManager   *mockRepo.MockTransactionManager
	contentRepo *mockRepo.MockContentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	contentRepo := mockRepo.NewMockContentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewContentService(
		txManager,
		contentRepo,
		publisher,
		newDiscardLogger(),
	)

	return contentServiceFixtures{
		service:     service,
		txManager:   txManager,
		contentRepo: contentRepo,
		publisher:   publisher,
	}
}

func draftContent(authorID uuid.UUID) *entity.Content {
	return &entity.Content{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    "Managing Fall Armyworm in Maize",
		Slug:     "managing-fall-armyworm-in-maize",
		Body:     "Scout fields weekly during the first six weeks after emergence.",
		Type:     entity.ContentTypeGuide,
		Status:   entity.ContentStatusDraft,
		Language: entity.LanguageSwahili,
	}
}

func publishedContent(authorID uuid.UUID) *entity.Content {
	content := draftContent(authorID)
	publishedAt := time.Now().Add(-24 * time.Hour)
	content.Status = entity.ContentStatusPublished
	content.PublishedAt = &publishedAt

	return content
}

func TestContentService_Create_Success(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	input := &usecase.CreateContentInput{
		Title:    "Coffee Pruning Basics",
		Body:     "Prune after harvest, removing old and diseased branches.",
		Type:     entity.ContentTypeArticle,
		Language: entity.LanguageEnglish,
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContentRepo := mockRepo.NewMockContentRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewContentRepository").Return(repository.ContentRepository(mockContentRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockContentRepo.On("FindBySlug", ctx, "coffee-pruning-basics").Return(nil, repository.ErrContentNotFound)
	mockContentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Content) bool {
		return c.AuthorID == officer.ID &&
			c.Slug == "coffee-pruning-basics" &&
			c.Status == entity.ContentStatusDraft &&
			c.PublishedAt == nil
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	content, err := fx.service.Create(ctx, officer, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ContentStatusDraft, content.Status)
	assert.Equal(t, entity.LanguageEnglish, content.Language)
}

func TestContentService_Create_FarmerForbidden(t *testing.T) {
	fx := createTestContentService(t)

	_, err := fx.service.Create(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, &usecase.CreateContentInput{
		Title: "My Notes",
		Type:  entity.ContentTypeArticle,
	})

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestContentService_Create_SlugCollisionGetsSuffix(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	officer := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	existing := publishedContent(uuid.New())

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContentRepo := mockRepo.NewMockContentRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewContentRepository").Return(repository.ContentRepository(mockContentRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockContentRepo.On("FindBySlug", ctx, "managing-fall-armyworm-in-maize").Return(existing, nil)
	mockContentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Content) bool {
		return c.Slug != existing.Slug && len(c.Slug) > len(existing.Slug)
	})).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	content, err := fx.service.Create(ctx, officer, &usecase.CreateContentInput{
		Title: "Managing Fall Armyworm in Maize",
		Type:  entity.ContentTypeGuide,
	})

	require.NoError(t, err)
	assert.NotEqual(t, existing.Slug, content.Slug)
}

func TestContentService_Publish_StampsTimestampOnce(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	author := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	content := draftContent(author.ID)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContentRepo := mockRepo.NewMockContentRepository(t)
	mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

	mockFactory.On("NewContentRepository").Return(repository.ContentRepository(mockContentRepo))
	mockFactory.On("NewActivityLogRepository").Return(repository.ActivityLogRepository(mockActivityRepo))

	mockContentRepo.On("FindByID", ctx, content.ID).Return(content, nil)
	mockContentRepo.On("Update", ctx, content).Return(nil)
	mockActivityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)

	fx.txManager.Passthrough(mockFactory)
	fx.publisher.On("PublishActivityEvent", ctx, mock.Anything).Return(nil)

	published, err := fx.service.Publish(ctx, author, content.ID)

	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt
	assert.Equal(t, entity.ContentStatusPublished, published.Status)

	// Archive and re-publish: the original timestamp survives.
	archived, err := fx.service.Archive(ctx, author, content.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ContentStatusArchived, archived.Status)

	republished, err := fx.service.Publish(ctx, author, content.ID)
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *republished.PublishedAt)
}

func TestContentService_Publish_NotAuthor(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	stranger := entity.Actor{ID: uuid.New(), Role: entity.RoleExtensionOfficer}
	content := draftContent(uuid.New())

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContentRepo := mockRepo.NewMockContentRepository(t)

	mockFactory.On("NewContentRepository").Return(repository.ContentRepository(mockContentRepo))
	mockContentRepo.On("FindByID", ctx, content.ID).Return(content, nil)

	fx.txManager.Passthrough(mockFactory)

	_, err := fx.service.Publish(ctx, stranger, content.ID)

	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestContentService_GetBySlug_PublishedBumpsViews(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := publishedContent(uuid.New())

	fx.contentRepo.On("FindBySlug", ctx, content.Slug).Return(content, nil)
	fx.contentRepo.On("IncrementViews", ctx, content.ID).Return(nil)

	got, err := fx.service.GetBySlug(ctx, entity.Actor{}, content.Slug)

	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)
}

func TestContentService_GetBySlug_DraftHiddenFromStrangers(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := draftContent(uuid.New())

	fx.contentRepo.On("FindBySlug", ctx, content.Slug).Return(content, nil)

	got, err := fx.service.GetBySlug(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, content.Slug)

	require.Error(t, err)
	assert.Nil(t, got)
	// Hidden content reads as missing, never as forbidden.
	assertAppErrorCode(t, err, "CONTENT_NOT_FOUND")
}

func TestContentService_GetBySlug_DraftVisibleToAuthorWithoutViewBump(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	content := draftContent(authorID)

	fx.contentRepo.On("FindBySlug", ctx, content.Slug).Return(content, nil)
	// No IncrementViews expectation: author previews never count.

	got, err := fx.service.GetBySlug(ctx, entity.Actor{ID: authorID, Role: entity.RoleExtensionOfficer}, content.Slug)

	require.NoError(t, err)
	assert.Equal(t, 0, got.ViewsCount)
}

func TestContentService_GetBySlug_FutureDatedHidden(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := draftContent(uuid.New())
	future := time.Now().Add(48 * time.Hour)
	content.Status = entity.ContentStatusPublished
	content.PublishedAt = &future

	fx.contentRepo.On("FindBySlug", ctx, content.Slug).Return(content, nil)

	_, err := fx.service.GetBySlug(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleFarmer}, content.Slug)

	require.Error(t, err)
	assertAppErrorCode(t, err, "CONTENT_NOT_FOUND")
}
