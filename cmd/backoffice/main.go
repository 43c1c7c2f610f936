package main

import (
	"context"
	"log/slog"
	"os"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/api"
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/infra/auth"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
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
			postgres.AutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAirportRepository,
			postgres.NewDriverRateRepository,
			postgres.NewLabourRateRepository,
			postgres.NewPetrolBulkRepository,
			postgres.NewVegetableAvailabilityRepository,
			postgres.NewAdminNotificationRepository,
			postgres.NewDriverNotificationRepository,
			postgres.NewPreOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAirportService,
			impl.NewDriverRateService,
			impl.NewLabourRateService,
			impl.NewPetrolBulkService,
			impl.NewVegetableAvailabilityService,
			impl.NewAdminNotificationService,
			impl.NewDriverNotificationService,
			impl.NewDriverNotifier,
			impl.NewPreOrderService,
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
			handler.NewAirportHandler,
			handler.NewDriverRateHandler,
			handler.NewLabourRateHandler,
			handler.NewPetrolBulkHandler,
			handler.NewVegetableAvailabilityHandler,
			handler.NewAdminNotificationHandler,
			handler.NewDriverNotificationHandler,
			handler.NewPreOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
