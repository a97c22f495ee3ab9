package main

import (
	"context"
	"log/slog"
	"os"

	"nutriledger/config"
	"nutriledger/internal/delivery"
	"nutriledger/internal/delivery/api"
	"nutriledger/internal/delivery/api/middleware"
	"nutriledger/internal/delivery/api/router/handler"
	"nutriledger/internal/infra/auth"
	"nutriledger/internal/infra/cache"
	"nutriledger/internal/infra/export"
	"nutriledger/internal/infra/gemini"
	logs "nutriledger/internal/infra/log"
	"nutriledger/internal/infra/metrics"
	"nutriledger/internal/infra/persistence/postgres"
	"nutriledger/internal/infra/pubsub"
	"nutriledger/internal/infra/storage"
	"nutriledger/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			postgres.Migrate,
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
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(prometheus.Registerer)),
		),
		metrics.NewLedgerMetrics,
		fx.Annotate(
			metrics.NewDBMetrics,
			fx.As(new(postgres.QueryObserver)),
		),
		metrics.NewHTTPMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRegisterRepository,
			postgres.NewGoalRepository,
			postgres.NewTransactionManager,
		),
		fx.Decorate(cache.NewCachedGoalRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			storage.New,
			gemini.NewGenerator,
			gemini.NewImageAnalyzer,
			gemini.NewGoalAdvisor,
			export.NewXLSXExporter,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			// Backs the inline publisher; unused when jobs go to the analyzer worker.
			impl.NewAnalysisService,
			impl.NewRegisterService,
			impl.NewSummaryService,
			impl.NewGoalService,
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
			handler.NewRegisterHandler,
			handler.NewSummaryHandler,
			handler.NewGoalHandler,
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
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
