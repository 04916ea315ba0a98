package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/server"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap(ctx, *configFile)
			if err != nil {
				return err
			}
			defer a.cleanup()

			if watch {
				config.Watch(func(c *config.Config) {
					a.log.Reconfigure(c.Logger)
					a.log.Info(context.Background(), "config reloaded, logger updated; restart to apply data or module changes",
						"modules", c.Modules)
				})
			}

			srv, err := server.New(ctx, a.cfg, a.log, a.data)
			if err != nil {
				return err
			}
			defer srv.Cleanup()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload logger level, format and masked fields when the config file changes")
	return cmd
}
