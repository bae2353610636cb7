package main

import (
	"context"

	"vendorhub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newMigrateCmd creates the migrate subcommand.
func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	steps := []struct {
		use   string
		short string
		run   func(*migrations.Migrator, context.Context) error
	}{
		{"up", "Apply all pending migrations", (*migrations.Migrator).Up},
		{"down", "Roll back the most recent migration", (*migrations.Migrator).Down},
		{"status", "Show which migrations have been applied", (*migrations.Migrator).Status},
	}
	for _, step := range steps {
		cmd.AddCommand(&cobra.Command{
			Use:   step.use,
			Short: step.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				var migrator *migrations.Migrator

				return runTask(cmd.Context(), fx.Populate(&migrator), func(ctx context.Context) error {
					return step.run(migrator, ctx)
				})
			},
		})
	}

	return cmd
}

// runTask starts the infrastructure graph, runs task and stops the graph again.
func runTask(ctx context.Context, populate fx.Option, task func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := fx.New(
		injectInfra(),
		injectRepo(),
		populate,
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}

	taskErr := task(ctx)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && taskErr == nil {
		return errors.WithStack(err)
	}

	return taskErr
}
