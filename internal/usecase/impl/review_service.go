package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	recorder   *activityRecorder
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	reviewRepo repository.ReviewRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  txManager,
		reviewRepo: reviewRepo,
		recorder:   newActivityRecorder(publisher, logger),
		logger:     logger,
	}
}

// targetExists checks that the reviewed resource exists for its declared type.
// The (type, id) pair is a tagged reference; an id of the wrong kind must not
// pass as a valid target.
func targetExists(ctx context.Context, repoFactory repository.RepositoryFactory, reviewableType entity.ReviewableType, reviewableID uuid.UUID) error {
	var err error

	switch reviewableType {
	case entity.ReviewableTypeProduct:
		_, err = repoFactory.NewProductRepository().FindByID(ctx, reviewableID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrReviewableNotFound.WrapMessage("review target missing")
		}
	case entity.ReviewableTypeSupplier:
		_, err = repoFactory.NewSupplierRepository().FindByID(ctx, reviewableID)
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrReviewableNotFound.WrapMessage("review target missing")
		}
	case entity.ReviewableTypeContent:
		_, err = repoFactory.NewContentRepository().FindByID(ctx, reviewableID)
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrReviewableNotFound.WrapMessage("review target missing")
		}
	case entity.ReviewableTypeConsultation:
		_, err = repoFactory.NewConsultationRepository().FindByID(ctx, reviewableID)
		if errors.Is(err, repository.ErrConsultationNotFound) {
			return domainerrors.ErrReviewableNotFound.WrapMessage("review target missing")
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown reviewable type")
	}

	if err != nil {
		return errors.Wrap(err, "failed to check review target")
	}

	return nil
}

// resyncSupplierRating recomputes a supplier's aggregate after a review change.
func resyncSupplierRating(ctx context.Context, repoFactory repository.RepositoryFactory, review *entity.Review) error {
	if review.ReviewableType != entity.ReviewableTypeSupplier {
		return nil
	}

	average, count, err := repoFactory.NewReviewRepository().AverageRating(ctx, entity.ReviewableTypeSupplier, review.ReviewableID)
	if err != nil {
		return errors.Wrap(err, "failed to compute supplier rating")
	}

	return errors.Wrap(
		repoFactory.NewSupplierRepository().UpdateRating(ctx, review.ReviewableID, average, count),
		"failed to store supplier rating")
}

// Create leaves a review on an existing resource.
func (srv *reviewService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateReviewInput) (*entity.Review, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Creating review", "userID", actor.ID, "type", input.ReviewableType, "targetID", input.ReviewableID)

	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	var (
		created  *entity.Review
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := targetExists(ctx, repoFactory, input.ReviewableType, input.ReviewableID); err != nil {
			return err
		}

		review := &entity.Review{
			ID:             uuid.New(),
			UserID:         actor.ID,
			ReviewableType: input.ReviewableType,
			ReviewableID:   input.ReviewableID,
			Rating:         input.Rating,
			Comment:        input.Comment,
		}
		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview.WrapMessage("review creation failed")
			}

			return errors.Wrap(err, "failed to create review")
		}

		if err := resyncSupplierRating(ctx, repoFactory, review); err != nil {
			return err
		}

		var err error
		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionReviewCreated, "review", review.ID,
			"rated "+string(review.ReviewableType)+" "+strconv.Itoa(review.Rating)+" stars",
			map[string]string{
				"reviewable_type": string(review.ReviewableType),
				"reviewable_id":   review.ReviewableID.String(),
				"rating":          strconv.Itoa(review.Rating),
			})
		if err != nil {
			return err
		}
		created = review

		return nil
	})

	if err != nil {
		logger.Warn("Review creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// List retrieves reviews for a resource.
func (srv *reviewService) List(ctx context.Context, input *usecase.ListReviewsInput) (*usecase.ReviewListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 || perPage > usecase.MaxPageSize {
		perPage = usecase.DefaultPageSize
	}

	reviews, total, err := srv.reviewRepo.ListByReviewable(ctx, input.ReviewableType, input.ReviewableID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	average, _, err := srv.reviewRepo.AverageRating(ctx, input.ReviewableType, input.ReviewableID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	return &usecase.ReviewListOutput{
		Reviews:       reviews,
		Total:         total,
		AverageRating: average,
	}, nil
}

// Update modifies a review.
func (srv *reviewService) Update(ctx context.Context, actor entity.Actor, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	var (
		updated  *entity.Review
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review update failed")
			}

			return errors.Wrap(err, "failed to find review")
		}
		if !actor.CanMutate(review.UserID) {
			return domainerrors.ErrForbidden.WrapMessage("review update rejected")
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		if err := resyncSupplierRating(ctx, repoFactory, review); err != nil {
			return err
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionReviewUpdated, "review", review.ID, "updated review", nil)
		if err != nil {
			return err
		}
		updated = review

		return nil
	})

	if err != nil {
		logger.Warn("Review update failed", "reviewID", reviewID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}

// Delete removes a review.
func (srv *reviewService) Delete(ctx context.Context, actor entity.Actor, reviewID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var auditRow *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review deletion failed")
			}

			return errors.Wrap(err, "failed to find review")
		}
		if !actor.CanMutate(review.UserID) {
			return domainerrors.ErrForbidden.WrapMessage("review deletion rejected")
		}

		if err := reviewRepo.Delete(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		if err := resyncSupplierRating(ctx, repoFactory, review); err != nil {
			return err
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionReviewDeleted, "review", review.ID, "removed review", nil)

		return err
	})

	if err != nil {
		logger.Warn("Review deletion failed", "reviewID", reviewID, "error", err.Error())

		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}
