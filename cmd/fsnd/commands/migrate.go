package commands

import (
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Create or update the tables of the configured modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx, *configFile)
			if err != nil {
				return err
			}
			defer a.cleanup()

			m, err := a.modules(ctx)
			if err != nil {
				return err
			}
			defer m.Cleanup()

			return m.Migrate(ctx)
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Migrate, then insert sample data for the configured modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx, *configFile)
			if err != nil {
				return err
			}
			defer a.cleanup()

			m, err := a.modules(ctx)
			if err != nil {
				return err
			}
			defer m.Cleanup()

			if err := m.Migrate(ctx); err != nil {
				return err
			}
			return m.Seed(ctx)
		},
	}
}
