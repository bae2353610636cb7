package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the vendorhub CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendorhub",
		Short: "Vendorhub - user and vendor account service",
		Long: `Vendorhub serves registration, login and password recovery for
end users and service vendors, plus the vendor onboarding flow.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newWorkerCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newPurgeTokensCmd())

	return cmd
}
