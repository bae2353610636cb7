package main

import (
	"context"
	"log/slog"
	"time"

	"vendorhub/internal/domain/repository"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newPurgeTokensCmd creates the purge-tokens subcommand.
func newPurgeTokensCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete revoked and expired tokens",
		Long: `Delete revoked tokens, and tokens of every kind that expired
more than --older-than ago.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				tokens repository.TokenRepository
				logger *slog.Logger
			)

			return runTask(cmd.Context(), fx.Populate(&tokens, &logger), func(ctx context.Context) error {
				cutoff := time.Now().Add(-olderThan)
				removed, err := tokens.PurgeInvalid(ctx, cutoff)
				if err != nil {
					return err
				}

				logger.Info("Purged tokens",
					slog.Int64("removed", removed),
					slog.Time("cutoff", cutoff),
				)

				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "keep expired tokens younger than this")

	return cmd
}
