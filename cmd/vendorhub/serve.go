package main

import (
	"vendorhub/internal/delivery/api"
	apimiddleware "vendorhub/internal/delivery/api/middleware"
	"vendorhub/internal/delivery/api/router/handler"
	"vendorhub/internal/infra/auth"
	"vendorhub/internal/infra/mail"
	"vendorhub/internal/infra/persistence/migrations"
	"vendorhub/internal/infra/pubsub"
	"vendorhub/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Long: `Start the REST API. Pending migrations are applied first when
migrations.autoMigrate is set.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fx.New(apiOptions()).Run()

			return nil
		},
	}
}

func apiOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectAPIDelivery(),
		fx.Invoke(
			migrations.RegisterAutoMigrate,
			startServer,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewHMACDigester,
			auth.NewJWTService,
			mail.NewMailer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenIssuer,
			impl.NewSessionIssuer,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewVendorService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVendorHandler,
			handler.NewCatalogHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectAPIDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
