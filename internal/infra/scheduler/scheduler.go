// Package scheduler runs background maintenance jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"

	"adinas/config"
	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"
	"adinas/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const ratingResyncBatchSize = 200

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config           *config.Config
	Logger           *slog.Logger
	RefreshTokenRepo repository.RefreshTokenRepository
	SupplierRepo     repository.SupplierRepository
	ReviewRepo       repository.ReviewRepository
}

// Scheduler owns the cron runner and the registered maintenance jobs.
type Scheduler struct {
	cron             *cron.Cron
	logger           *slog.Logger
	refreshTokenRepo repository.RefreshTokenRepository
	supplierRepo     repository.SupplierRepository
	reviewRepo       repository.ReviewRepository
}

// New builds the scheduler and wires its start and stop into the app
// lifecycle. When the scheduler is disabled in configuration nothing is
// registered and the provider returns nil.
func New(params Params) (*Scheduler, error) {
	cfg := params.Config.Scheduler
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Scheduler disabled, background jobs will not run")

		return nil, nil
	}

	s := &Scheduler{
		cron:             cron.New(),
		logger:           params.Logger,
		refreshTokenRepo: params.RefreshTokenRepo,
		supplierRepo:     params.SupplierRepo,
		reviewRepo:       params.ReviewRepo,
	}

	if cfg.TokenPurgeCron != "" {
		if _, err := s.cron.AddFunc(cfg.TokenPurgeCron, s.purgeExpiredTokens); err != nil {
			return nil, errors.Wrap(err, "failed to register token purge job")
		}
	}
	if cfg.RatingResyncCron != "" {
		if _, err := s.cron.AddFunc(cfg.RatingResyncCron, s.resyncSupplierRatings); err != nil {
			return nil, errors.Wrap(err, "failed to register rating resync job")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.cron.Start()
			params.Logger.Info("Scheduler started",
				slog.String("token_purge_cron", cfg.TokenPurgeCron),
				slog.String("rating_resync_cron", cfg.RatingResyncCron),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := s.cron.Stop()
			select {
			case <-stopCtx.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return s, nil
}

// purgeExpiredTokens deletes refresh tokens past their expiry so dead
// sessions do not accumulate.
func (s *Scheduler) purgeExpiredTokens() {
	ctx := context.Background()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to purge expired refresh tokens",
			slog.String("error", err.Error()),
		)

		return
	}

	if deleted > 0 {
		s.logger.Info("Purged expired refresh tokens",
			slog.Int64("deleted", deleted),
		)
	}
}

// resyncSupplierRatings recomputes every supplier's aggregate rating from the
// review table. Ratings are kept in sync transactionally on review writes;
// this job repairs any drift.
func (s *Scheduler) resyncSupplierRatings() {
	ctx := context.Background()

	var resynced int
	for offset := 0; ; offset += ratingResyncBatchSize {
		suppliers, _, err := s.supplierRepo.List(ctx, repository.SupplierListFilter{
			Limit:  ratingResyncBatchSize,
			Offset: offset,
		})
		if err != nil {
			s.logger.Error("Failed to list suppliers for rating resync",
				slog.String("error", err.Error()),
			)

			return
		}
		if len(suppliers) == 0 {
			break
		}

		for _, supplier := range suppliers {
			rating, count, err := s.reviewRepo.AverageRating(ctx, entity.ReviewableTypeSupplier, supplier.ID)
			if err != nil {
				s.logger.Error("Failed to compute supplier rating",
					slog.String("supplier_id", supplier.ID.String()),
					slog.String("error", err.Error()),
				)

				continue
			}

			if rating == supplier.Rating && count == supplier.ReviewsCount {
				continue
			}

			if err := s.supplierRepo.UpdateRating(ctx, supplier.ID, rating, count); err != nil {
				s.logger.Error("Failed to update supplier rating",
					slog.String("supplier_id", supplier.ID.String()),
					slog.String("error", err.Error()),
				)

				continue
			}
			resynced++
		}

		if len(suppliers) < ratingResyncBatchSize {
			break
		}
	}

	if resynced > 0 {
		s.logger.Info("Resynced supplier ratings",
			slog.Int("suppliers", resynced),
		)
	}
}
