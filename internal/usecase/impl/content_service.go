package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	recorder    *activityRecorder
	logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	txManager repository.TransactionManager,
	contentRepo repository.ContentRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		txManager:   txManager,
		contentRepo: contentRepo,
		recorder:    newActivityRecorder(publisher, logger),
		logger:      logger,
	}
}

// authorRoles may draft and manage educational content.
var authorRoles = entity.Roles{entity.RoleExtensionOfficer, entity.RoleAdmin}

// slugify derives a URL-safe slug from a title.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// Create drafts a new content piece authored by the actor.
func (srv *contentService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateContentInput) (*entity.Content, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Creating content", "userID", actor.ID, "title", input.Title)

	if !authorRoles.Contains(actor.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage("content creation rejected")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown content type")
	}
	language := input.Language
	if !language.IsValid() {
		language = entity.LanguageSwahili
	}

	var (
		created  *entity.Content
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()

		slug := slugify(input.Title)
		if _, err := contentRepo.FindBySlug(ctx, slug); err == nil {
			// Keep slugs stable and unique by suffixing a short random id.
			slug = slug + "-" + uuid.NewString()[:8]
		} else if !errors.Is(err, repository.ErrContentNotFound) {
			return errors.Wrap(err, "failed to check slug")
		}

		content := &entity.Content{
			ID:            uuid.New(),
			AuthorID:      actor.ID,
			Title:         input.Title,
			Slug:          slug,
			Body:          input.Body,
			Type:          input.Type,
			Status:        entity.ContentStatusDraft,
			Language:      language,
			Category:      input.Category,
			Tags:          input.Tags,
			CoverImageURL: input.CoverImageURL,
			VideoURL:      input.VideoURL,
		}
		if err := contentRepo.Create(ctx, content); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				return domainerrors.ErrSlugAlreadyExists.WrapMessage("content creation failed")
			}

			return errors.Wrap(err, "failed to create content")
		}

		var err error
		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionContentCreated, "content", content.ID,
			"drafted "+string(content.Type)+" "+content.Title, nil)
		if err != nil {
			return err
		}
		created = content

		return nil
	})

	if err != nil {
		logger.Warn("Content creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute content creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// visibleTo applies the publish gate for reads.
func visibleTo(content *entity.Content, actor entity.Actor) bool {
	if content.IsVisible(time.Now()) {
		return true
	}

	return actor.CanMutate(content.AuthorID)
}

// GetBySlug retrieves a piece by slug, bumping the view counter for public reads.
func (srv *contentService) GetBySlug(ctx context.Context, actor entity.Actor, slug string) (*entity.Content, error) {
	content, err := srv.contentRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("content lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find content")
	}

	return srv.finishRead(ctx, content, actor)
}

// GetByID retrieves a piece by ID under the same visibility rules.
func (srv *contentService) GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Content, error) {
	content, err := srv.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("content lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find content")
	}

	return srv.finishRead(ctx, content, actor)
}

// finishRead enforces visibility and bumps the view counter.
// Hidden pieces read as missing rather than forbidden.
func (srv *contentService) finishRead(ctx context.Context, content *entity.Content, actor entity.Actor) (*entity.Content, error) {
	if !visibleTo(content, actor) {
		return nil, domainerrors.ErrContentNotFound.WrapMessage("content lookup failed")
	}

	if content.IsVisible(time.Now()) {
		// Best-effort raw counter; a lost bump is acceptable.
		if err := srv.contentRepo.IncrementViews(ctx, content.ID); err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
			logger.Warn("Failed to bump view counter", "contentID", content.ID, "error", err)
		} else {
			content.ViewsCount++
		}
	}

	return content, nil
}

// List retrieves content pieces matching the filter.
func (srv *contentService) List(ctx context.Context, input *usecase.ListContentInput) (*usecase.ContentListOutput, error) {
	items, total, err := srv.contentRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content")
	}

	return &usecase.ContentListOutput{Items: items, Total: total}, nil
}

// Update modifies a piece.
func (srv *contentService) Update(ctx context.Context, actor entity.Actor, contentID uuid.UUID, input *usecase.UpdateContentInput) (*entity.Content, error) {
	return srv.mutate(ctx, actor, contentID, entity.ActionContentUpdated, "updated", func(content *entity.Content) error {
		if input.Title != nil {
			content.Title = *input.Title
		}
		if input.Body != nil {
			content.Body = *input.Body
		}
		if input.Type != nil && input.Type.IsValid() {
			content.Type = *input.Type
		}
		if input.Language != nil && input.Language.IsValid() {
			content.Language = *input.Language
		}
		if input.Category != nil {
			content.Category = *input.Category
		}
		if input.Tags != nil {
			content.Tags = input.Tags
		}
		if input.CoverImageURL != nil {
			content.CoverImageURL = *input.CoverImageURL
		}
		if input.VideoURL != nil {
			content.VideoURL = *input.VideoURL
		}

		return nil
	})
}

// Publish makes a piece publicly visible.
func (srv *contentService) Publish(ctx context.Context, actor entity.Actor, contentID uuid.UUID) (*entity.Content, error) {
	return srv.mutate(ctx, actor, contentID, entity.ActionContentPublished, "published", func(content *entity.Content) error {
		content.Publish(time.Now())

		return nil
	})
}

// Archive withdraws a piece from the public feed.
func (srv *contentService) Archive(ctx context.Context, actor entity.Actor, contentID uuid.UUID) (*entity.Content, error) {
	return srv.mutate(ctx, actor, contentID, entity.ActionContentArchived, "archived", func(content *entity.Content) error {
		content.Archive()

		return nil
	})
}

// mutate loads a piece, checks authorship, applies the change, and records it.
func (srv *contentService) mutate(ctx context.Context, actor entity.Actor, contentID uuid.UUID, action, verb string, apply func(*entity.Content) error) (*entity.Content, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		mutated  *entity.Content
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()

		content, err := contentRepo.FindByID(ctx, contentID)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return domainerrors.ErrContentNotFound.WrapMessage("content mutation failed")
			}

			return errors.Wrap(err, "failed to find content")
		}
		if !actor.CanMutate(content.AuthorID) {
			return domainerrors.ErrForbidden.WrapMessage("content mutation rejected")
		}

		if err := apply(content); err != nil {
			return err
		}

		if err := contentRepo.Update(ctx, content); err != nil {
			return errors.Wrap(err, "failed to update content")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			action, "content", content.ID, verb+" "+content.Title, nil)
		if err != nil {
			return err
		}
		mutated = content

		return nil
	})

	if err != nil {
		logger.Warn("Content mutation failed", "contentID", contentID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute content mutation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return mutated, nil
}

// Delete removes a piece.
func (srv *contentService) Delete(ctx context.Context, actor entity.Actor, contentID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var auditRow *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()

		content, err := contentRepo.FindByID(ctx, contentID)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return domainerrors.ErrContentNotFound.WrapMessage("content deletion failed")
			}

			return errors.Wrap(err, "failed to find content")
		}
		if !actor.CanMutate(content.AuthorID) {
			return domainerrors.ErrForbidden.WrapMessage("content deletion rejected")
		}

		if err := contentRepo.Delete(ctx, content.ID); err != nil {
			return errors.Wrap(err, "failed to delete content")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionContentDeleted, "content", content.ID,
			"removed "+content.Title, nil)

		return err
	})

	if err != nil {
		logger.Warn("Content deletion failed", "contentID", contentID, "error", err.Error())

		return errors.Wrap(err, "failed to execute content deletion transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}
