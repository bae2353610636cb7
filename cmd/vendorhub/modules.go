package main

import (
	"context"
	"log/slog"

	"vendorhub/config"
	"vendorhub/internal/delivery"
	"vendorhub/internal/delivery/api/router/handler"
	logs "vendorhub/internal/infra/log"
	"vendorhub/internal/infra/metrics"
	"vendorhub/internal/infra/persistence/migrations"
	"vendorhub/internal/infra/persistence/postgres"
	"vendorhub/internal/infra/tracing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			fx.Annotate(
				postgres.NewDatabasePinger,
				fx.As(new(handler.DatabasePinger)),
			),
			migrations.NewMigrator,
			metrics.New,
			metrics.NewFlowRecorder,
			tracing.NewProvider,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewVendorRepository,
			postgres.NewServiceRepository,
			postgres.NewTokenRepository,
			postgres.NewAccountEventRepository,
		),
	)
}

// startServer runs every delivery and shuts the app down if one of them fails.
func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
