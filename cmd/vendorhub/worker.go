package main

import (
	"vendorhub/internal/delivery/worker"
	"vendorhub/internal/delivery/worker/handler"
	"vendorhub/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newWorkerCmd creates the worker subcommand.
func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Start the account event consumer",
		Long: `Start the push endpoint that receives account events from the
broker and appends them to the audit trail.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fx.New(workerOptions()).Run()

			return nil
		},
	}
}

func workerOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		fx.Provide(
			impl.NewAccountEventService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
}
