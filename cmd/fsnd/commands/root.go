package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "fsnd",
		Short:         "Fyyur booking, trivia and coffee shop backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: search config.yaml)")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewMigrateCommand(&configFile),
		NewSeedCommand(&configFile),
		NewTokenCommand(&configFile),
		NewVersionCommand(),
	)

	return rootCmd
}
