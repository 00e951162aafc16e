package main

import (
	"context"
	"log/slog"
	"os"

	"adinas/config"
	"adinas/internal/delivery"
	"adinas/internal/delivery/http"
	"adinas/internal/delivery/http/middleware"
	"adinas/internal/delivery/http/router/handler"
	"adinas/internal/infra/auth"
	logs "adinas/internal/infra/log"
	"adinas/internal/infra/persistence/postgres"
	"adinas/internal/infra/pubsub"
	"adinas/internal/infra/push"
	"adinas/internal/infra/scheduler"
	"adinas/internal/infra/storage"
	"adinas/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
		pubsub.NewEventPublisher,
		push.NewPushService,
		scheduler.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCredentialRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewSupplierRepository,
			postgres.NewProductRepository,
			postgres.NewContentRepository,
			postgres.NewReviewRepository,
			postgres.NewConsultationRepository,
			postgres.NewFarmRecordRepository,
			postgres.NewMarketPriceRepository,
			postgres.NewWeatherRepository,
			postgres.NewActivityLogRepository,
			postgres.NewStatsRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewSupplierService,
			impl.NewProductService,
			impl.NewContentService,
			impl.NewReviewService,
			impl.NewConsultationService,
			impl.NewFarmRecordService,
			impl.NewMarketService,
			impl.NewNotificationService,
			impl.NewActivityService,
			impl.NewStatsService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewSupplierHandler,
			handler.NewProductHandler,
			handler.NewContentHandler,
			handler.NewReviewHandler,
			handler.NewConsultationHandler,
			handler.NewFarmRecordHandler,
			handler.NewMarketHandler,
			handler.NewNotificationHandler,
			handler.NewActivityHandler,
			handler.NewStatsHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startScheduler forces construction of the cron scheduler so its lifecycle
// hooks run. It is nil when disabled by configuration.
func startScheduler(_ *scheduler.Scheduler) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
